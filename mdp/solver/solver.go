// Package solver provides interchangeable dynamic-programming solvers that
// turn an assembled MDP (transition matrices, reward matrix, discount) into
// a stationary deterministic policy maximizing expected discounted
// infinite-horizon return.
package solver

import (
	"fmt"

	"github.com/warehouse-sim/warehouse-sim/mdp"
)

// Solver is the capability interface the model pipeline consumes. Solve is
// a pure function over immutable inputs: independent calls never interact,
// so one solver instance can serve any number of (discount) invocations.
type Solver interface {
	Name() string
	Solve(m *mdp.Matrices, discount float64) (mdp.Policy, error)
}

// New creates a solver by name. Valid names: "policy-iteration",
// "value-iteration".
func New(name string) (Solver, error) {
	switch name {
	case "policy-iteration":
		return &PolicyIteration{}, nil
	case "value-iteration":
		return &ValueIteration{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q; valid algorithms: %v", mdp.ErrSolver, name, Names())
	}
}

// Names lists the registered algorithm names.
func Names() []string {
	return []string{"policy-iteration", "value-iteration"}
}

// checkDiscount rejects discounts outside the open interval (0,1); the
// infinite-horizon objective diverges at the endpoints.
func checkDiscount(discount float64) error {
	if discount <= 0 || discount >= 1 {
		return fmt.Errorf("%w: discount %v outside (0,1)", mdp.ErrSolver, discount)
	}
	return nil
}

// actionValues returns q(·,a) = r(·,a) + γ·Pₐ·v for one action.
func actionValues(m *mdp.Matrices, a int, discount float64, v []float64) []float64 {
	q := make([]float64, len(v))
	m.Transitions[a].DoNonZero(func(i, j int, p float64) {
		q[i] += p * v[j]
	})
	for s := range q {
		q[s] = m.Rewards.At(s, a) + discount*q[s]
	}
	return q
}

// greedyActions returns the per-state argmax over action values. Ties go to
// the lowest action index, so policies are reproducible across runs and
// across algorithms even where all actions are equally worthless (e.g. a
// store event against a fully occupied configuration).
func greedyActions(m *mdp.Matrices, discount float64, v []float64) []int {
	numActions := len(m.Transitions)
	best := make([]int, len(v))
	bestVal := actionValues(m, 0, discount, v)
	for a := 1; a < numActions; a++ {
		q := actionValues(m, a, discount, v)
		for s := range q {
			if q[s] > bestVal[s] {
				bestVal[s] = q[s]
				best[s] = a
			}
		}
	}
	return best
}
