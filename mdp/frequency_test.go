package mdp

import (
	"errors"
	"math"
	"testing"
)

// sixEvents covers the 6 (task, item) combinations of the default domain
// with a known skew: store/red appears twice, restore/green never.
func sixEvents() []Event {
	return []Event{
		{TaskStore, 0}, {TaskStore, 0}, // store red ×2
		{TaskStore, 1},   // store green
		{TaskStore, 2},   // store blue
		{TaskRestore, 0}, // restore red
		{TaskRestore, 2}, // restore blue
	}
}

func TestFrequencyTable_EmpiricalCounts(t *testing.T) {
	// GIVEN a 6-event training log with store/red appearing twice
	d := DefaultDomain()

	// WHEN the table is estimated
	ft, err := NewFrequencyTable(d, sixEvents())
	if err != nil {
		t.Fatalf("NewFrequencyTable: %v", err)
	}

	// THEN each probability is count/total
	if got := ft.Prob(TaskStore, 0); got != 2.0/6.0 {
		t.Errorf("Prob(store,red): got %v, want %v", got, 2.0/6.0)
	}
	if got := ft.Prob(TaskRestore, 1); got != 0 {
		t.Errorf("Prob(restore,green): got %v, want 0", got)
	}
}

func TestFrequencyTable_SumsToOne(t *testing.T) {
	// GIVEN the default 2-task × 3-item domain
	d := DefaultDomain()
	ft, err := NewFrequencyTable(d, sixEvents())
	if err != nil {
		t.Fatalf("NewFrequencyTable: %v", err)
	}

	// THEN the 6 combination probabilities sum to 1 within 1e-9
	sum := 0.0
	for task := 0; task < len(d.Tasks); task++ {
		for item := 0; item < len(d.Items); item++ {
			sum += ft.Prob(Task(task), Item(item))
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1 within 1e-9", sum)
	}
}

func TestFrequencyTable_EmptyLog(t *testing.T) {
	// GIVEN no training events
	// WHEN the table is estimated
	_, err := NewFrequencyTable(DefaultDomain(), nil)

	// THEN construction fails with a data error
	if !errors.Is(err, ErrData) {
		t.Errorf("got %v, want ErrData", err)
	}
}
