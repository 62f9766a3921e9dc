// Package mdp models an automated storage/retrieval warehouse as a
// finite-state Markov Decision Process and evaluates policies against a
// greedy baseline.
//
// # Reading Guide
//
// Start with these three files to understand the model:
//   - types.go: Configuration, Event, State and the slot occupancy rules
//   - statespace.go: deterministic state enumeration and the state↔index bijection
//   - matrices.go: sparse transition and dense reward matrix assembly
//
// # Architecture
//
// The pipeline is a strict dependency chain, built once and held immutable:
//
//	training log → FrequencyTable → (with StateSpace) → Matrices
//	            → (with a Solver) → Policy → (with order stream) → distance
//
// The mdp package owns the model; implementations of collaborators live in
// sub-packages:
//   - mdp/solver/: dynamic-programming solvers (policy iteration, value iteration)
//   - mdp/eventlog/: flat-file readers for training logs and order streams
//   - mdp/results/: optional SQLite persistence of comparison runs
//
// Everything is single-threaded and deterministic: identical inputs produce
// bit-identical matrices, policies, and simulated distances.
package mdp
