package mdp

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// Matrices holds the assembled model in the layout the solvers consume:
// one sparse |S|×|S| transition matrix per action, and a dense |S|×|A|
// reward matrix (state-major, action-minor). Built once, immutable
// afterwards.
type Matrices struct {
	Transitions []*sparse.CSR
	Rewards     *mat.Dense
}

// Assemble builds the transition and reward matrices from the enumerated
// state space and the two models, then validates them. Each transition row
// is either a unit self-loop (infeasible action) or a fan-out over the
// successor configuration's events, so only feasible successors are
// visited; the full O(|S|²) sweep is never materialized.
//
// Validation failure is fatal to the model: it means the transition or
// reward model itself is defective, and nothing downstream can be trusted.
func Assemble(ss *StateSpace, tm *TransitionModel, rm *RewardModel) (*Matrices, error) {
	d := ss.Domain()
	n := ss.Size()
	numActions := d.NumActions()

	m := &Matrices{
		Transitions: make([]*sparse.CSR, numActions),
		Rewards:     mat.NewDense(n, numActions, nil),
	}

	for a := 0; a < numActions; a++ {
		dok := sparse.NewDOK(n, n)
		for s := 0; s < n; s++ {
			from := ss.State(s)
			m.Rewards.Set(s, a, rm.Reward(a, from))

			if !from.Feasible(a) {
				dok.Set(s, s, tm.Probability(a, from, from))
				continue
			}
			next := from.Apply(a)
			for t := 0; t < len(d.Tasks); t++ {
				for i := 0; i < len(d.Items); i++ {
					ev := Event{Task: Task(t), Item: Item(i)}
					to, err := ss.Index(next, ev)
					if err != nil {
						return nil, err
					}
					if p := tm.Probability(a, from, ss.State(to)); p != 0 {
						dok.Set(s, to, p)
					}
				}
			}
		}
		m.Transitions[a] = dok.ToCSR()
		logrus.Debugf("assembled transition matrix for action %d: %d non-zeros", a, m.Transitions[a].NNZ())
	}

	if err := m.validate(n, numActions); err != nil {
		return nil, err
	}
	return m, nil
}

// validate proves row-stochasticity of every transition matrix and the
// reward matrix's shape.
func (m *Matrices) validate(numStates, numActions int) error {
	for a, tr := range m.Transitions {
		if r, c := tr.Dims(); r != numStates || c != numStates {
			return fmt.Errorf("%w: transition matrix for action %d is %d×%d, want %d×%d",
				ErrValidation, a, r, c, numStates, numStates)
		}
		sums := make([]float64, numStates)
		tr.DoNonZero(func(i, _ int, v float64) {
			sums[i] += v
		})
		for s, sum := range sums {
			if math.Abs(sum-1) > normTolerance {
				return fmt.Errorf("%w: transition row (action=%d, state=%d) sums to %.12f, want 1",
					ErrValidation, a, s, sum)
			}
		}
	}
	if r, c := m.Rewards.Dims(); r != numStates || c != numActions {
		return fmt.Errorf("%w: reward matrix is %d×%d, want %d×%d",
			ErrValidation, r, c, numStates, numActions)
	}
	return nil
}
