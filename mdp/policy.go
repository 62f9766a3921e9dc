package mdp

// Policy is a stationary deterministic state→action mapping, produced once
// per (algorithm, discount) pair and immutable afterwards. Actions are
// addressed by the same dense state index the StateSpace assigns.
type Policy struct {
	actions []int
}

// NewPolicy wraps a per-state action vector. The slice is copied so later
// mutation by the caller cannot alter the policy.
func NewPolicy(actions []int) Policy {
	out := make([]int, len(actions))
	copy(out, actions)
	return Policy{actions: out}
}

// Action returns the action chosen for a state index.
func (p Policy) Action(state int) int { return p.actions[state] }

// Len returns the number of states the policy covers.
func (p Policy) Len() int { return len(p.actions) }
