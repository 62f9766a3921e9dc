package mdp

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// StateSpace enumerates every (configuration, task, item) tuple of a domain
// in fixed lexicographic order over (slot₁, …, slotₙ, task, item). That
// order defines each state's permanent integer index; the transition and
// reward matrices, the policy vector, and the solver all address states by
// it, so it must be identical across regenerations.
type StateSpace struct {
	domain Domain
	states []State
	index  map[uint64]int // packed state key → dense index
}

// NewStateSpace generates the full state space for the domain. Generation
// validates that no duplicate tuple is produced; a duplicate signals a
// misconfigured domain and aborts construction.
func NewStateSpace(d Domain) (*StateSpace, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := d.NumStates()
	ss := &StateSpace{
		domain: d,
		states: make([]State, 0, n),
		index:  make(map[uint64]int, n),
	}

	seen := mapset.NewThreadUnsafeSet[uint64]()
	cfg := make(Configuration, d.Slots)
	for {
		for t := 0; t < len(d.Tasks); t++ {
			for i := 0; i < len(d.Items); i++ {
				s := State{Config: cfg.Clone(), Event: Event{Task: Task(t), Item: Item(i)}}
				key := ss.key(s.Config, s.Event)
				if !seen.Add(key) {
					return nil, fmt.Errorf("%w: duplicate state %v", ErrConfig, s)
				}
				ss.index[key] = len(ss.states)
				ss.states = append(ss.states, s)
			}
		}
		if !nextConfiguration(cfg, d.NumContents()) {
			break
		}
	}

	if len(ss.states) != n {
		return nil, fmt.Errorf("%w: generated %d states, domain implies %d", ErrConfig, len(ss.states), n)
	}
	return ss, nil
}

// nextConfiguration advances cfg to its lexicographic successor, treating
// the last slot as the fastest-moving digit. Returns false after the
// highest configuration.
func nextConfiguration(cfg Configuration, base int) bool {
	for i := len(cfg) - 1; i >= 0; i-- {
		if int(cfg[i])+1 < base {
			cfg[i]++
			return true
		}
		cfg[i] = 0
	}
	return false
}

// key packs a (configuration, event) pair into a single comparable value.
// Mixed-radix over the domain cardinalities, so distinct tuples always pack
// to distinct keys.
func (ss *StateSpace) key(cfg Configuration, ev Event) uint64 {
	k := uint64(0)
	for _, c := range cfg {
		k = k*uint64(ss.domain.NumContents()) + uint64(c)
	}
	k = k*uint64(len(ss.domain.Tasks)) + uint64(ev.Task)
	k = k*uint64(len(ss.domain.Items)) + uint64(ev.Item)
	return k
}

// Size returns the number of enumerated states.
func (ss *StateSpace) Size() int { return len(ss.states) }

// Domain returns the domain the space was generated from.
func (ss *StateSpace) Domain() Domain { return ss.domain }

// State returns the state at a dense index.
func (ss *StateSpace) State(i int) State { return ss.states[i] }

// Index resolves a (configuration, event) pair to its permanent index. A
// pair outside the enumerated space is a lookup error.
func (ss *StateSpace) Index(cfg Configuration, ev Event) (int, error) {
	if len(cfg) != ss.domain.Slots {
		return 0, fmt.Errorf("%w: configuration has %d slots, domain has %d", ErrLookup, len(cfg), ss.domain.Slots)
	}
	// Out-of-range values would alias another tuple's packed key, so reject
	// them before the map lookup.
	for i, c := range cfg {
		if int(c) >= ss.domain.NumContents() {
			return 0, fmt.Errorf("%w: slot %d holds content %d outside the domain", ErrLookup, i, c)
		}
	}
	if int(ev.Task) >= len(ss.domain.Tasks) || int(ev.Item) >= len(ss.domain.Items) {
		return 0, fmt.Errorf("%w: event (task=%d, item=%d) outside the domain", ErrLookup, ev.Task, ev.Item)
	}
	idx, ok := ss.index[ss.key(cfg, ev)]
	if !ok {
		return 0, fmt.Errorf("%w: state (%v, task=%d, item=%d) not in state space", ErrLookup, cfg, ev.Task, ev.Item)
	}
	return idx, nil
}
