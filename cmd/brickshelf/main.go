package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/ruminaider/brickshelf/internal/config"
	"github.com/ruminaider/brickshelf/internal/paths"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.1.0"

var (
	verbose  bool
	userFlag string
	cfg      config.Config
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "brickshelf",
	Short:        "Track your LEGO collection",
	Long:         "brickshelf keeps track of the LEGO sets you own, what state they are in, and what to build next.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(paths.ConfigFile())
		if err != nil {
			return err
		}
		if userFlag != "" {
			cfg.User = userFlag
		}
		logger, err = buildLogger(cfg.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the home view
		return homeCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("brickshelf %s\n", version)
	},
}

func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.DisableStacktrace = true
	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// openApp wires the database and stores for commands that need them.
func openApp() (*commands.App, error) {
	return commands.Open(cfg, paths.ShelfDir(), logger)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&userFlag, "user", "", "Act as this user instead of the configured one")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(homeCmd)
	rootCmd.AddCommand(shareCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
