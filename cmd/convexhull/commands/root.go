package commands

import (
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"convexhull/internal/app"
	"convexhull/internal/logging"
)

var (
	dir        string
	input      string
	verbose    bool
	cpuProfile string
	width      int
	height     int

	appCtx      *app.Wire
	stopProfile func()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "convexhull",
		Short:         "Convex hulls of integer point datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logging.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			if cpuProfile != "" {
				if err := os.MkdirAll(cpuProfile, 0o755); err != nil {
					return err
				}
				stopProfile = profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.Quiet).Stop
			}

			w, err := app.NewWire(app.Config{Dir: dir, Width: width, Height: height})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dir, "dir", "", "base directory for relative paths (default: working directory)")
	root.PersistentFlags().StringVarP(&input, "input", "i", "dataset.txt", "dataset file, one \"<x> <y>\" record per line")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every hull step")
	root.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile into this directory")
	root.PersistentFlags().IntVar(&width, "width", 0, "plot width in pixels (default 960)")
	root.PersistentFlags().IntVar(&height, "height", 0, "plot height in pixels (default 540)")

	root.AddCommand(hullCmd(), scatterCmd(), fingerprintCmd())
	return root
}

// Execute runs the CLI. Cobra's own error output is silenced; a failure is
// reported once, as an ERROR record on stderr.
func Execute() error {
	// Flag errors surface before PersistentPreRunE installs the real logger.
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	err := newRootCmd().Execute()
	if stopProfile != nil {
		stopProfile()
		stopProfile = nil
	}
	if err != nil {
		logging.Logger().Error("run failed", "err", err)
	}
	return err
}
