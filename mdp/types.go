package mdp

// Task indexes Domain.Tasks. The semantics are positional: TaskStore fills
// a slot, TaskRestore empties one, whatever the configured names are.
type Task uint8

const (
	TaskStore Task = iota
	TaskRestore
)

// Item indexes Domain.Items.
type Item uint8

// Content is one slot's occupancy: Empty, or the item stored there.
// Content k+1 holds Item k.
type Content uint8

// Empty is the empty-slot sentinel, always content 0.
const Empty Content = 0

// ContentOf returns the content value representing an item.
func ContentOf(it Item) Content { return Content(it) + 1 }

// ItemOf returns the item held by a non-empty content value.
func ItemOf(c Content) Item { return Item(c - 1) }

// Configuration is the content assignment across all slots at a point in
// time. Its length always equals Domain.Slots.
type Configuration []Content

// EmptyConfiguration returns the all-empty configuration, the start of
// every simulation run.
func EmptyConfiguration(d Domain) Configuration {
	return make(Configuration, d.Slots)
}

// Clone returns an independent copy.
func (c Configuration) Clone() Configuration {
	out := make(Configuration, len(c))
	copy(out, c)
	return out
}

// Equal reports whether two configurations assign identical contents.
func (c Configuration) Equal(other Configuration) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Event is a pending store/restore request for one item color.
type Event struct {
	Task Task
	Item Item
}

// State pairs a configuration with its pending event. All generated states
// are pairwise distinct and carry a permanent integer index assigned by the
// StateSpace at enumeration time.
type State struct {
	Config Configuration
	Event  Event
}

// Equal reports whether two states are the same tuple.
func (s State) Equal(other State) bool {
	return s.Event == other.Event && s.Config.Equal(other.Config)
}

// Feasible reports whether applying the state's pending event to the given
// slot is allowed by the occupancy rules: a store needs an empty slot, a
// restore needs the slot to hold the requested item.
func (s State) Feasible(action int) bool {
	switch s.Event.Task {
	case TaskStore:
		return s.Config[action] == Empty
	default:
		return s.Config[action] == ContentOf(s.Event.Item)
	}
}

// Apply returns the configuration after applying the pending event to the
// given slot: stores fill it, restores empty it. Callers check Feasible
// first where the occupancy rules matter.
func (s State) Apply(action int) Configuration {
	next := s.Config.Clone()
	if s.Event.Task == TaskStore {
		next[action] = ContentOf(s.Event.Item)
	} else {
		next[action] = Empty
	}
	return next
}
