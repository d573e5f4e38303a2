package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/covariance_trees/pkg/engine"
	"github.com/wildfunctions/covariance_trees/pkg/prior"
	"github.com/wildfunctions/covariance_trees/pkg/walk"
)

func main() {
	cfg := engine.DefaultConfig()
	configPath := ""

	root := &cobra.Command{
		Use:           "covtree",
		Short:         "Sample and incrementally rewrite covariance-function trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return nil
			}
			loaded, err := engine.LoadConfig(configPath)
			if err != nil {
				return err
			}
			// Explicit flags win over the config file.
			applyFlagOverrides(cmd, &loaded, cfg)
			cfg = loaded
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&cfg.Profile, "profile", cfg.Profile, "production profile ("+strings.Join(prior.Names(), ", ")+")")
	pf.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time-based)")
	pf.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	pf.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "verbose output")

	sample := &cobra.Command{
		Use:   "sample",
		Short: "Draw independent kernels from the prior",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(cfg, newLogger(cfg.Verbose))
			if err != nil {
				return err
			}
			report, err := e.RunSample()
			if err != nil {
				return err
			}
			if cfg.Format == "json" {
				return engine.WriteJSON(os.Stdout, report)
			}
			engine.WriteTextSample(os.Stdout, report)
			return nil
		},
	}
	sample.Flags().IntVar(&cfg.Samples, "count", cfg.Samples, "number of kernels to sample")
	sample.Flags().Float64SliceVar(&cfg.EvalPoints, "eval", cfg.EvalPoints, "points to evaluate each kernel at")

	walkCmd := &cobra.Command{
		Use:   "walk",
		Short: "Run an incremental regeneration walk over one kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engine.New(cfg, newLogger(cfg.Verbose))
			if err != nil {
				return err
			}
			report, err := e.RunWalk()
			if err != nil {
				return err
			}
			if cfg.Format == "json" {
				return engine.WriteJSON(os.Stdout, report)
			}
			engine.WriteTextWalk(os.Stdout, report)
			return nil
		},
	}
	walkCmd.Flags().IntVar(&cfg.Steps, "steps", cfg.Steps, "number of regeneration steps")
	walkCmd.Flags().StringVar(&cfg.Policy, "policy", cfg.Policy, "position policy ("+strings.Join(walk.Names(), ", ")+")")

	profiles := &cobra.Command{
		Use:   "profiles",
		Short: "List production profiles and walk policies",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("profiles: %s\n", strings.Join(prior.Names(), ", "))
			fmt.Printf("policies: %s\n", strings.Join(walk.Names(), ", "))
		},
	}

	root.AddCommand(sample, walkCmd, profiles)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// applyFlagOverrides copies flag-set values over a file-loaded config.
func applyFlagOverrides(cmd *cobra.Command, loaded *engine.Config, flagCfg engine.Config) {
	set := func(name string, apply func()) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("profile", func() { loaded.Profile = flagCfg.Profile })
	set("seed", func() { loaded.Seed = flagCfg.Seed })
	set("format", func() { loaded.Format = flagCfg.Format })
	set("verbose", func() { loaded.Verbose = flagCfg.Verbose })
	set("count", func() { loaded.Samples = flagCfg.Samples })
	set("eval", func() { loaded.EvalPoints = flagCfg.EvalPoints })
	set("steps", func() { loaded.Steps = flagCfg.Steps })
	set("policy", func() { loaded.Policy = flagCfg.Policy })
}
