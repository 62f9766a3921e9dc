package mdp

import "testing"

// testDomain is a 2-slot, 2-item warehouse, small enough for exhaustive
// sweeps: 3² × 2 × 2 = 36 states.
func testDomain() Domain {
	return Domain{
		Slots:     2,
		Empty:     "empty",
		Items:     []string{"red", "blue"},
		Tasks:     []string{"store", "restore"},
		Rewards:   []float64{2, 1},
		Distances: []float64{1, 2},
	}
}

// uniformFrequencies builds a table with probability 1/4 per (task, item)
// combination of testDomain.
func uniformFrequencies(t *testing.T, d Domain) *FrequencyTable {
	t.Helper()
	records := []Event{
		{Task: TaskStore, Item: 0},
		{Task: TaskStore, Item: 1},
		{Task: TaskRestore, Item: 0},
		{Task: TaskRestore, Item: 1},
	}
	ft, err := NewFrequencyTable(d, records)
	if err != nil {
		t.Fatalf("NewFrequencyTable: %v", err)
	}
	return ft
}

// mustStateSpace generates the state space or fails the test.
func mustStateSpace(t *testing.T, d Domain) *StateSpace {
	t.Helper()
	ss, err := NewStateSpace(d)
	if err != nil {
		t.Fatalf("NewStateSpace: %v", err)
	}
	return ss
}
