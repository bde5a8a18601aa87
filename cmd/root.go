package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andy9310/GreenNetwork/netenv"
)

var (
	// CLI flags for environment construction
	numNodes      int     // Number of nodes in the generated topology
	maxInterfaces int     // Maximum number of links per node
	maxCapacity   float64 // Capacity applied uniformly to every link
	maxSteps      int     // Episode horizon in steps
	seed          int64   // Seed for topology and demand generation
	configPath    string  // Optional YAML config file
	logLevel      string  // Log verbosity level

	// CLI flags for the episode driver
	episodes    int    // Number of episodes to run
	policyName  string // Built-in policy driving the episodes
	renderState bool   // Dump per-link state after each episode
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "greennet",
	Short: "Simulated network environment for link-failure and traffic-engineering policies",
}

// runCmd drives episodes against a built-in policy using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run episodes of the network environment",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := netenv.DefaultConfig()
		if configPath != "" {
			cfg, err = netenv.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Loading config: %v", err)
			}
		}

		// Flags set on the command line override the config file.
		if cmd.Flags().Changed("num-nodes") {
			cfg.NumNodes = numNodes
		}
		if cmd.Flags().Changed("max-interfaces") {
			cfg.MaxInterfaces = maxInterfaces
		}
		if cmd.Flags().Changed("max-capacity") {
			cfg.MaxCapacity = maxCapacity
		}
		if cmd.Flags().Changed("max-steps") {
			cfg.MaxSteps = maxSteps
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = &seed
		}

		env, err := netenv.New(cfg)
		if err != nil {
			logrus.Fatalf("Creating environment: %v", err)
		}
		policy, err := newPolicy(policyName, env.ActionLen(), env.Seed())
		if err != nil {
			logrus.Fatalf("Selecting policy: %v", err)
		}

		logrus.Infof("Starting %d episode(s): %d nodes, %d links, horizon %d, policy %s, seed %d",
			episodes, cfg.NumNodes, env.Topology().NumLinks(), cfg.MaxSteps, policyName, env.Seed())

		for ep := 0; ep < episodes; ep++ {
			obs := env.Reset()
			action := make(netenv.Action, env.ActionLen())
			var results []netenv.StepResult
			for {
				action = policy(obs, action)
				res, err := env.Step(action)
				if err != nil {
					logrus.Fatalf("Step failed: %v", err)
				}
				results = append(results, res)
				obs = res.Observation
				if res.Done {
					break
				}
			}

			summary := netenv.Summarize(results)
			logrus.Infof("Episode %d: steps=%d totalReward=%.0f meanOverloaded=%.2f maxOverloaded=%d",
				ep, summary.Steps, summary.TotalReward, summary.MeanOverloaded, summary.MaxOverloaded)
			if renderState {
				env.Render(os.Stdout)
			}
		}

		logrus.Info("Run complete.")
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
	runCmd.Flags().IntVar(&numNodes, "num-nodes", netenv.DefaultNumNodes, "Number of nodes in the topology")
	runCmd.Flags().IntVar(&maxInterfaces, "max-interfaces", netenv.DefaultMaxInterfaces, "Maximum number of links per node")
	runCmd.Flags().Float64Var(&maxCapacity, "max-capacity", netenv.DefaultMaxCapacity, "Capacity applied to every link")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", netenv.DefaultMaxSteps, "Episode horizon in steps")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for topology and demand generation")
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML environment config file")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().IntVar(&episodes, "episodes", 1, "Number of episodes to run")
	runCmd.Flags().StringVar(&policyName, "policy", "all-open", "Built-in policy (all-open, random, close-overloaded)")
	runCmd.Flags().BoolVar(&renderState, "render", false, "Dump per-link state after each episode")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
