package mdp

// RewardModel computes the immediate reward of taking an action in a state.
// Pure: depends only on (action, state) and the configured per-action
// constants, never on the successor state.
type RewardModel struct {
	domain Domain
}

// NewRewardModel builds a reward model over the domain's per-action reward
// constants.
func NewRewardModel(d Domain) *RewardModel {
	return &RewardModel{domain: d}
}

// Reward returns the action's configured constant when the pending event is
// feasible at that slot, and 0 otherwise. Infeasible actions earn nothing
// but are not penalized.
func (rm *RewardModel) Reward(action int, s State) float64 {
	if !s.Feasible(action) {
		return 0
	}
	return rm.domain.Rewards[action]
}
