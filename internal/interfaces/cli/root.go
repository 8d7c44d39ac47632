package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
)

var Version = "dev"

const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUsage         = 2
	ExitNotFound      = 3
	ExitConfiguration = 4
)

func NewRootCommand(ctx *Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Amazon Route 53 companion tool",
		Long:          "r53 lists hosted zones and record sets and points A records at a given or detected address.",
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd, ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if ctx.Options.ShowVersion {
				fmt.Fprintln(ctx.Out, Version)
				return nil
			}
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.Options.ConfigFile, "config", "c", "", "Settings file (default $XDG_CONFIG_HOME/r53/config.yaml)")
	flags.StringVarP(&ctx.Options.Region, "region", "r", "", "AWS region (default us-east-1)")
	flags.StringVarP(&ctx.Options.Profile, "profile", "p", "", "Named profile from the shared credentials file")
	flags.StringVar(&ctx.Options.ProfilesLocation, "profiles-location", "", "Path of the shared credentials file")
	flags.StringVar(&ctx.Options.LogFormat, "log-format", "", "Log format: text or json")
	flags.BoolVar(&ctx.Options.Debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&ctx.Options.ShowVersion, "version", "v", false, "Show version information")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	})

	rootCmd.AddCommand(
		newListCommand(ctx),
		newGetCommand(ctx),
		newSetCommand(ctx),
	)
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(parent context.Context) int {
	return Run(parent, NewContext(), os.Args[1:])
}

func Run(parent context.Context, ctx *Context, args []string) int {
	rootCmd := NewRootCommand(ctx)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(ctx.Out)
	rootCmd.SetErr(ctx.Err)

	err := rootCmd.ExecuteContext(parent)
	logCallStats(ctx.Logger())
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(ctx.Err, ErrorStyle.Render("Error: "+err.Error()))
	ctx.Logger().Debug("command failed", "kind", domain.Kind(err), "error", err)
	return ExitCode(err)
}

func logCallStats(log *logger.Logger) {
	for _, s := range logger.GetMetrics() {
		log.Debug("provider call stats",
			"call", s.Operation,
			"total", s.Total,
			"failed", s.Failed,
			"avg_latency_ms", s.AvgLatencyMs,
		)
	}
}

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrValidation):
		return ExitUsage
	case errors.Is(err, domain.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, domain.ErrConfiguration):
		return ExitConfiguration
	default:
		return ExitFailure
	}
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return nil
	}
}

func initLogging(cmd *cobra.Command, ctx *Context) error {
	cfg := logger.DefaultConfig()
	cfg.Output = ctx.Err

	if ctx.Options.Debug || os.Getenv(constants.EnvDebug) != "" {
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}

	format := ctx.Options.LogFormat
	if format == "" {
		format = os.Getenv(constants.EnvLogFormat)
	}
	switch format {
	case "":
	case "text", "json":
		cfg.Format = format
	default:
		return fmt.Errorf("%w: unknown log format %q", domain.ErrValidation, format)
	}

	ctx.log = logger.New(cfg)
	runCtx := logger.ContextWithLogger(cmd.Context(), ctx.log)
	cmd.SetContext(logger.WithOperation(runCtx, cmd.CommandPath()))
	return nil
}
