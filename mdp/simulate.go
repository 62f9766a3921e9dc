package mdp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// SimResult is the outcome of replaying one order stream.
type SimResult struct {
	Distance float64 // accumulated travel distance
	Steps    int     // events replayed
	Noops    int     // greedy only: restores for an absent item
}

// Simulate replays an order stream through a policy and returns the total
// travel distance. The run starts from the all-empty configuration; each
// event forms the current state, resolves its index, reads the policy's
// action, accumulates that action's distance, and applies the event to the
// chosen slot (store fills it, restore empties it).
//
// This is a deterministic replay of one concrete trace, not a sample of
// the stochastic transition model — that model only describes the
// distribution of future events during solving. An event whose
// (configuration, event) pair is missing from the state space fails the
// run with a lookup error; other runs remain valid.
func Simulate(ss *StateSpace, p Policy, stream []Event) (SimResult, error) {
	d := ss.Domain()
	if p.Len() != ss.Size() {
		return SimResult{}, fmt.Errorf("%w: policy covers %d states, state space has %d", ErrLookup, p.Len(), ss.Size())
	}

	cfg := EmptyConfiguration(d)
	var res SimResult
	for step, ev := range stream {
		idx, err := ss.Index(cfg, ev)
		if err != nil {
			return SimResult{}, fmt.Errorf("replaying event %d: %w", step, err)
		}
		action := p.Action(idx)
		res.Distance += d.Distances[action]
		res.Steps++
		logrus.Debugf("step %d: state=%d action=%d distance=%.1f", step, idx, action, res.Distance)

		if ev.Task == TaskStore {
			cfg[action] = ContentOf(ev.Item)
		} else {
			cfg[action] = Empty
		}
	}
	return res, nil
}

// SimulateGreedy replays an order stream with the fixed nearest-slot
// heuristic, consuming nothing but the stream itself: stores go to the
// lowest-indexed empty slot, restores take the lowest-indexed slot holding
// the requested item. A restore for an item not present anywhere is a
// no-op — it models a request for an absent item, accumulates no distance,
// and is counted in Noops. A store against a fully occupied warehouse
// no-ops the same way.
func SimulateGreedy(d Domain, stream []Event) SimResult {
	cfg := EmptyConfiguration(d)
	var res SimResult
	for _, ev := range stream {
		res.Steps++
		action := -1
		if ev.Task == TaskStore {
			for i, c := range cfg {
				if c == Empty {
					action = i
					break
				}
			}
		} else {
			for i, c := range cfg {
				if c == ContentOf(ev.Item) {
					action = i
					break
				}
			}
		}
		if action < 0 {
			res.Noops++
			continue
		}
		res.Distance += d.Distances[action]
		if ev.Task == TaskStore {
			cfg[action] = ContentOf(ev.Item)
		} else {
			cfg[action] = Empty
		}
	}
	return res
}
