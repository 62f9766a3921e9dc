package mdp

// TransitionModel computes P(to | from, action) from the occupancy rules
// and the empirical event frequencies. It is a pure function of its inputs:
// the same (action, from, to) always yields the same probability.
type TransitionModel struct {
	freqs *FrequencyTable
}

// NewTransitionModel builds a transition model over the given frequency
// table.
func NewTransitionModel(freqs *FrequencyTable) *TransitionModel {
	return &TransitionModel{freqs: freqs}
}

// Probability returns P(to | from, action).
//
// An infeasible action (storing into an occupied slot, or restoring an item
// the slot does not hold) leaves the system where it is: probability 1 on
// the self-loop, 0 elsewhere. A feasible action fixes the successor
// configuration deterministically; the successor event is exogenous, so the
// transition probability to any state with that configuration is the
// empirical frequency of that state's (task, item) pair.
func (tm *TransitionModel) Probability(action int, from, to State) float64 {
	if !from.Feasible(action) {
		if to.Equal(from) {
			return 1
		}
		return 0
	}
	if !to.Config.Equal(from.Apply(action)) {
		return 0
	}
	return tm.freqs.Prob(to.Event.Task, to.Event.Item)
}
