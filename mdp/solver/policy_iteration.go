package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/warehouse-sim/warehouse-sim/mdp"
)

// piMaxIterations caps improvement rounds. Policy iteration over a finite
// MDP terminates in at most |A|^|S| rounds and in practice in a handful;
// hitting the cap means the evaluation step is broken.
const piMaxIterations = 1000

// PolicyIteration alternates exact policy evaluation (a linear solve of
// (I−γ·Pπ)·v = rπ) with greedy policy improvement until the policy is
// stable.
type PolicyIteration struct{}

func (*PolicyIteration) Name() string { return "policy-iteration" }

// Solve starts from the all-zeros policy and iterates evaluate/improve.
func (pi *PolicyIteration) Solve(m *mdp.Matrices, discount float64) (mdp.Policy, error) {
	if err := checkDiscount(discount); err != nil {
		return mdp.Policy{}, err
	}

	n, _ := m.Rewards.Dims()
	policy := make([]int, n)
	for iter := 1; iter <= piMaxIterations; iter++ {
		v, err := evaluate(m, policy, discount)
		if err != nil {
			return mdp.Policy{}, err
		}
		improved := greedyActions(m, discount, v)

		stable := true
		for s := range policy {
			if improved[s] != policy[s] {
				stable = false
				break
			}
		}
		policy = improved
		if stable {
			logrus.Debugf("policy iteration converged after %d iterations", iter)
			return mdp.NewPolicy(policy), nil
		}
	}
	return mdp.Policy{}, fmt.Errorf("%w: policy iteration did not converge within %d iterations", mdp.ErrSolver, piMaxIterations)
}

// evaluate solves (I−γ·Pπ)·v = rπ exactly for the value of the given
// policy. The system matrix is strictly diagonally dominant for any
// discount in (0,1), so the LU factorization cannot be singular on a valid
// model; a factorization failure is reported as a solver error.
func evaluate(m *mdp.Matrices, policy []int, discount float64) ([]float64, error) {
	n := len(policy)
	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for s := 0; s < n; s++ {
		a.Set(s, s, 1)
		b.SetVec(s, m.Rewards.At(s, policy[s]))
	}
	for act, tr := range m.Transitions {
		tr.DoNonZero(func(i, j int, p float64) {
			if policy[i] == act {
				a.Set(i, j, a.At(i, j)-discount*p)
			}
		})
	}

	var lu mat.LU
	lu.Factorize(a)
	v := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(v, false, b); err != nil {
		return nil, fmt.Errorf("%w: policy evaluation solve failed: %v", mdp.ErrSolver, err)
	}
	return v.RawVector().Data, nil
}
