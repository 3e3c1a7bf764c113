/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// sdbdump plans splits for a SimpleDB domain and dumps their records to
// delimited text files, optionally merging the per-split part files into a
// single export.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/suparena/sdbsplit"
	"github.com/suparena/sdbsplit/config"
	"github.com/suparena/sdbsplit/csvout"
	"github.com/suparena/sdbsplit/split"
	"github.com/suparena/sdbsplit/store"
)

var (
	cfgPath     string
	verbose     bool
	profileType string

	logger        *zap.Logger
	stopProfiling func()
)

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func startProfiling(profileType string) (func(), error) {
	switch profileType {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfile).Stop, nil
	case "trace":
		return profile.Start(profile.TraceProfile).Stop, nil
	default:
		return nil, fmt.Errorf("unknown profile type %q (options: cpu, mem, trace)", profileType)
	}
}

// loadConfig reads the option map from the configured file, overlays
// credentials from the environment (including a .env file when present) and
// validates it.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, proceeding with environment variables")
	}

	m, err := config.LoadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(m)
	return config.FromMap(m)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sdbdump",
		Short:         "Partition a SimpleDB domain into splits and dump its records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if logger, err = newLogger(); err != nil {
				return err
			}
			stopProfiling, err = startProfiling(profileType)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopProfiling != nil {
				stopProfiling()
			}
			if logger != nil {
				logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a properties or YAML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&profileType, "profile", "", "enable profiling (cpu, mem, trace)")

	root.AddCommand(newPlanCmd(), newDumpCmd(), newVersionCmd())
	return root
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the split table for the configured domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			splits, err := sdbsplit.PlanSplits(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			fmt.Printf("%-8s %-12s %-12s %s\n", "SPLIT", "START", "END", "TOKEN")
			for i, sp := range splits {
				token := "-"
				if sp.Token != nil {
					token = *sp.Token
				}
				fmt.Printf("%-8d %-12d %-12d %s\n", i, sp.StartRow, sp.EndRow, token)
			}
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	var (
		outDir    string
		mergePath string
		workers   int
		headers   string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump every record of the configured domain to part files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			splits, err := sdbsplit.PlanSplits(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			var headerFields []string
			if headers != "" {
				headerFields = strings.Split(headers, ",")
			}

			sinks, closeSinks, err := openSinks(outDir, splits, headerFields)
			if err != nil {
				return err
			}

			r := sdbsplit.NewRunner(cfg, workers, logger)
			runErr := r.Run(cmd.Context(), splits, func(sp split.Split, rec *store.Record) error {
				return sinks[sp.StartRow].Write(rec)
			})
			if err := closeSinks(); err != nil && runErr == nil {
				runErr = err
			}
			if runErr != nil {
				return runErr
			}

			if mergePath != "" {
				if err := csvout.MergeFiles(outDir, mergePath); err != nil {
					return err
				}
				logger.Info("merged part files", zap.String("output", mergePath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "directory for per-split part files")
	cmd.Flags().StringVar(&mergePath, "merge", "", "merge part files into this single output file")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of splits to process concurrently")
	cmd.Flags().StringVar(&headers, "headers", "", "comma-separated attribute names to emit as CSV columns")
	return cmd
}

// openSinks creates one part file and writer per split, keyed by the split's
// start row. The returned closer flushes and closes them all.
func openSinks(outDir string, splits []split.Split, headers []string) (map[uint64]*csvout.Writer, func() error, error) {
	sinks := make(map[uint64]*csvout.Writer, len(splits))
	files := make([]*os.File, 0, len(splits))

	closeAll := func() error {
		var firstErr error
		for start, w := range sinks {
			if err := w.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to flush part for split at row %d: %w", start, err)
			}
		}
		for _, f := range files {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	for i, sp := range splits {
		f, err := os.Create(filepath.Join(outDir, fmt.Sprintf("part-%04d", i)))
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to create part file: %w", err)
		}
		files = append(files, f)
		sinks[sp.StartRow] = csvout.NewWriter(f, headers)
	}
	return sinks, closeAll, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := sdbsplit.GetVersionInfo()
			fmt.Printf("sdbdump version %s\n", info.Version)
			fmt.Printf("Git commit: %s\n", info.GitCommit)
			fmt.Printf("Build date: %s\n", info.BuildDate)
			fmt.Printf("Go version: %s\n", info.GoVersion)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
