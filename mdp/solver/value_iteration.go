package solver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/warehouse-sim/warehouse-sim/mdp"
)

const (
	// viEpsilon is the max-norm change below which the value function is
	// considered converged.
	viEpsilon = 1e-9

	// viMaxSweeps caps the number of full state sweeps. The contraction
	// factor is the discount, so any discount bounded away from 1
	// converges orders of magnitude sooner.
	viMaxSweeps = 10000
)

// ValueIteration computes the optimal value function by repeated Bellman
// backups over all states, then extracts the greedy policy.
type ValueIteration struct{}

func (*ValueIteration) Name() string { return "value-iteration" }

// Solve iterates v ← max_a [r(·,a) + γ·Pₐ·v] until the max-norm change
// drops below epsilon, then returns the greedy policy for the final v.
func (vi *ValueIteration) Solve(m *mdp.Matrices, discount float64) (mdp.Policy, error) {
	if err := checkDiscount(discount); err != nil {
		return mdp.Policy{}, err
	}

	n, _ := m.Rewards.Dims()
	v := make([]float64, n)
	for sweep := 1; sweep <= viMaxSweeps; sweep++ {
		vNew := actionValues(m, 0, discount, v)
		for a := 1; a < len(m.Transitions); a++ {
			q := actionValues(m, a, discount, v)
			for s := range vNew {
				if q[s] > vNew[s] {
					vNew[s] = q[s]
				}
			}
		}

		delta := 0.0
		for s := range v {
			delta = math.Max(delta, math.Abs(vNew[s]-v[s]))
		}
		v = vNew
		if delta < viEpsilon {
			logrus.Debugf("value iteration converged after %d sweeps (delta=%.3g)", sweep, delta)
			return mdp.NewPolicy(greedyActions(m, discount, v)), nil
		}
	}
	return mdp.Policy{}, fmt.Errorf("%w: value iteration did not converge within %d sweeps", mdp.ErrSolver, viMaxSweeps)
}
