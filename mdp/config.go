package mdp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Domain is the immutable configuration shared by every component: slot
// count, the content/item/task domains, and the per-action reward and
// distance constants. There is exactly one action per slot, so Rewards and
// Distances must each have Slots entries.
//
// The content domain is derived: content 0 is the empty sentinel, content
// k+1 holds item k. Loaded from YAML via LoadDomain(path), or use
// DefaultDomain().
type Domain struct {
	Slots     int       `yaml:"slots"`
	Empty     string    `yaml:"empty"`     // name of the empty-slot sentinel
	Items     []string  `yaml:"items"`     // item colors, index order is the enumeration order
	Tasks     []string  `yaml:"tasks"`     // exactly two: store at index 0, restore at index 1
	Rewards   []float64 `yaml:"rewards"`   // per-action reward constant
	Distances []float64 `yaml:"distances"` // per-action travel distance
}

// DefaultDomain returns the built-in four-slot, three-color warehouse.
// Slot 0 is nearest: shortest distance, highest reward.
func DefaultDomain() Domain {
	return Domain{
		Slots:     4,
		Empty:     "empty",
		Items:     []string{"red", "green", "blue"},
		Tasks:     []string{"store", "restore"},
		Rewards:   []float64{4, 3, 2, 1},
		Distances: []float64{1, 2, 3, 4},
	}
}

// LoadDomain reads a Domain from a YAML file and validates it.
func LoadDomain(path string) (Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Domain{}, fmt.Errorf("reading domain config: %w", err)
	}
	var d Domain
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Domain{}, fmt.Errorf("parsing domain config: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

// Validate checks the internal consistency of the domain. All violations
// are configuration errors: the model must not be built from a domain that
// fails here.
func (d Domain) Validate() error {
	if d.Slots <= 0 {
		return fmt.Errorf("%w: slots must be positive, got %d", ErrConfig, d.Slots)
	}
	if d.Empty == "" {
		return fmt.Errorf("%w: empty sentinel name must be set", ErrConfig)
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: item domain is empty", ErrConfig)
	}
	seen := make(map[string]bool, len(d.Items)+1)
	seen[d.Empty] = true
	for _, it := range d.Items {
		if seen[it] {
			return fmt.Errorf("%w: duplicate name %q in content domain", ErrConfig, it)
		}
		seen[it] = true
	}
	if len(d.Tasks) != 2 {
		return fmt.Errorf("%w: task domain must be [store, restore], got %v", ErrConfig, d.Tasks)
	}
	if d.Tasks[0] == d.Tasks[1] {
		return fmt.Errorf("%w: duplicate task name %q", ErrConfig, d.Tasks[0])
	}
	// One action per slot.
	if len(d.Rewards) != d.Slots {
		return fmt.Errorf("%w: %d reward constants for %d slots", ErrConfig, len(d.Rewards), d.Slots)
	}
	if len(d.Distances) != d.Slots {
		return fmt.Errorf("%w: %d distance constants for %d slots", ErrConfig, len(d.Distances), d.Slots)
	}
	return nil
}

// NumActions returns the action count. Actions address slots, so this
// always equals Slots.
func (d Domain) NumActions() int { return d.Slots }

// NumContents returns the content domain size: all items plus the empty
// sentinel.
func (d Domain) NumContents() int { return len(d.Items) + 1 }

// NumStates returns |contents|^slots × |tasks| × |items|, the exact size
// of the enumerated state space.
func (d Domain) NumStates() int {
	n := 1
	for i := 0; i < d.Slots; i++ {
		n *= d.NumContents()
	}
	return n * len(d.Tasks) * len(d.Items)
}

// TaskIndex resolves a task name to its Task value.
func (d Domain) TaskIndex(name string) (Task, bool) {
	for i, t := range d.Tasks {
		if t == name {
			return Task(i), true
		}
	}
	return 0, false
}

// ItemIndex resolves an item name to its Item value.
func (d Domain) ItemIndex(name string) (Item, bool) {
	for i, it := range d.Items {
		if it == name {
			return Item(i), true
		}
	}
	return 0, false
}

// ContentName returns the display name of a content value.
func (d Domain) ContentName(c Content) string {
	if c == Empty {
		return d.Empty
	}
	return d.Items[int(c)-1]
}
