package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/warehouse-sim/warehouse-sim/mdp"
	"github.com/warehouse-sim/warehouse-sim/mdp/eventlog"
	"github.com/warehouse-sim/warehouse-sim/mdp/results"
	"github.com/warehouse-sim/warehouse-sim/mdp/solver"
)

var (
	// CLI flags
	logLevel     string    // Log verbosity level
	trainingLog  string    // Path to the <task> <item> training log
	orderStream  string    // Path to the order stream replayed by the simulators
	domainConfig string    // Optional YAML domain config; built-in default when empty
	discounts    []float64 // Discount factors, one policy per (algorithm, discount)
	algorithms   []string  // Solver algorithms to compare
	resultsDB    string    // Optional SQLite file recording comparison rows
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "warehouse-sim",
	Short: "MDP model and policy comparison for an automated storage/retrieval warehouse",
}

// runCmd builds the model from the training log, solves one policy per
// (algorithm, discount), and replays the order stream through each policy
// and through the greedy baseline.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the warehouse MDP and compare solved policies against the greedy baseline",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if trainingLog == "" || orderStream == "" {
			logrus.Fatalf("Both --training-log and --orders must be provided. Exiting.")
		}

		domain := mdp.DefaultDomain()
		if domainConfig != "" {
			if domain, err = mdp.LoadDomain(domainConfig); err != nil {
				logrus.Fatalf("Loading domain config: %v", err)
			}
		}

		startTime := time.Now()

		training, err := eventlog.ReadFile(trainingLog, domain)
		if err != nil {
			logrus.Fatalf("Reading training log: %v", err)
		}
		orders, err := eventlog.ReadFile(orderStream, domain)
		if err != nil {
			logrus.Fatalf("Reading order stream: %v", err)
		}

		// Model construction, in strict dependency order. Any failure here
		// invalidates everything downstream, so all of them are fatal.
		freqs, err := mdp.NewFrequencyTable(domain, training)
		if err != nil {
			logrus.Fatalf("Estimating frequencies: %v", err)
		}
		space, err := mdp.NewStateSpace(domain)
		if err != nil {
			logrus.Fatalf("Generating state space: %v", err)
		}
		logrus.Infof("State space: %d states, %d actions, %d training events, %d orders",
			space.Size(), domain.NumActions(), len(training), len(orders))

		matrices, err := mdp.Assemble(space, mdp.NewTransitionModel(freqs), mdp.NewRewardModel(domain))
		if err != nil {
			logrus.Fatalf("Assembling matrices: %v", err)
		}

		greedy := mdp.SimulateGreedy(domain, orders)

		var store *results.Store
		if resultsDB != "" {
			if store, err = results.Open(resultsDB); err != nil {
				logrus.Fatalf("Opening results db: %v", err)
			}
			defer store.Close()
		}

		fmt.Printf("%-18s %10s %16s %16s\n", "algorithm", "discount", "policy distance", "greedy distance")
		for _, name := range algorithms {
			sol, err := solver.New(name)
			if err != nil {
				logrus.Fatalf("Creating solver: %v", err)
			}
			for _, discount := range discounts {
				policy, err := sol.Solve(matrices, discount)
				if err != nil {
					logrus.Fatalf("Solving (%s, %v): %v", name, discount, err)
				}
				// A lookup failure invalidates this run only; the other
				// (algorithm, discount) runs stay comparable.
				sim, err := mdp.Simulate(space, policy, orders)
				if err != nil {
					logrus.Errorf("Simulation (%s, %v) failed: %v", name, discount, err)
					continue
				}
				fmt.Printf("%-18s %10.3f %16.1f %16.1f\n", name, discount, sim.Distance, greedy.Distance)

				if store != nil {
					err := store.Record(results.Comparison{
						Algorithm:      name,
						Discount:       discount,
						States:         space.Size(),
						PolicyDistance: sim.Distance,
						GreedyDistance: greedy.Distance,
						GreedyNoops:    greedy.Noops,
						CreatedAt:      time.Now(),
					})
					if err != nil {
						logrus.Errorf("Recording comparison: %v", err)
					}
				}
			}
		}
		if greedy.Noops > 0 {
			logrus.Infof("Greedy baseline skipped %d restores for absent items", greedy.Noops)
		}
		logrus.Infof("Comparison complete in %v.", time.Since(startTime).Round(time.Millisecond))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&trainingLog, "training-log", "", "Path to the training log (one \"<task> <item>\" per line)")
	runCmd.Flags().StringVar(&orderStream, "orders", "", "Path to the order stream replayed by the simulators")
	runCmd.Flags().StringVar(&domainConfig, "domain-config", "", "YAML domain configuration (default: built-in 4-slot warehouse)")
	runCmd.Flags().Float64SliceVar(&discounts, "discounts", []float64{0.9}, "Comma-separated discount factors, each in (0,1)")
	runCmd.Flags().StringSliceVar(&algorithms, "algorithms", solver.Names(), "Comma-separated solver algorithms")
	runCmd.Flags().StringVar(&resultsDB, "results-db", "", "Optional SQLite file recording comparison rows")

	rootCmd.AddCommand(runCmd)
}
