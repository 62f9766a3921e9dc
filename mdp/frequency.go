package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// normTolerance bounds how far a probability table's total may drift from 1
// before construction is rejected.
const normTolerance = 1e-9

// FrequencyTable holds the empirical probability of each (task, item)
// combination, estimated from a training log. It is the stochastic model of
// the next arriving event: the model assumes arrivals are exogenous and
// distributed per these frequencies, independent of the action just taken.
//
// Built once and immutable afterwards.
type FrequencyTable struct {
	probs [][]float64 // [task][item]
}

// NewFrequencyTable estimates probabilities as count/total over the given
// records. An empty record set is a data error. The table is checked
// immediately after construction: if the probabilities do not sum to 1
// within 1e-9 the construction fails, since a non-stochastic table would
// corrupt every transition row built from it.
func NewFrequencyTable(d Domain, records []Event) (*FrequencyTable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: training log contains no events", ErrData)
	}

	counts := make([][]int, len(d.Tasks))
	for t := range counts {
		counts[t] = make([]int, len(d.Items))
	}
	for _, ev := range records {
		counts[ev.Task][ev.Item]++
	}

	total := float64(len(records))
	probs := make([][]float64, len(d.Tasks))
	flat := make([]float64, 0, len(d.Tasks)*len(d.Items))
	for t := range probs {
		probs[t] = make([]float64, len(d.Items))
		for i := range probs[t] {
			probs[t][i] = float64(counts[t][i]) / total
			flat = append(flat, probs[t][i])
		}
	}

	if sum := floats.Sum(flat); math.Abs(sum-1) > normTolerance {
		return nil, fmt.Errorf("%w: empirical frequencies sum to %.12f, want 1", ErrData, sum)
	}
	return &FrequencyTable{probs: probs}, nil
}

// Prob returns the empirical probability of the (task, item) combination.
func (ft *FrequencyTable) Prob(t Task, it Item) float64 {
	return ft.probs[t][it]
}
