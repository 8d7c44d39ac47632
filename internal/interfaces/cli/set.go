package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-r53/internal/application/usecase"
	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/domain/entity"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
)

type setOptions struct {
	ip          string
	localIP     bool
	publicIP    bool
	ttl         int64
	dryRun      bool
	wait        bool
	waitTimeout time.Duration
}

func newSetCommand(ctx *Context) *cobra.Command {
	var opts setOptions

	setCmd := &cobra.Command{
		Use:   "set <host>",
		Short: "Create or update an A record",
		Long: `Point the A record of <host> at an address.

The value is taken from --ip, then --public-ip, then --local-ip. With none of
them the existing values are kept, so --ttl alone only changes the TTL.
New records get a TTL of one day unless --ttl is given.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, ctx, args[0], opts)
		},
	}

	setCmd.Flags().StringVar(&opts.ip, "ip", "", "IPv4 address to set")
	setCmd.Flags().BoolVar(&opts.localIP, "local-ip", false, "Use the first non-loopback IPv4 address of this machine")
	setCmd.Flags().BoolVar(&opts.publicIP, "public-ip", false, "Use the public IPv4 address of this machine")
	setCmd.Flags().Int64Var(&opts.ttl, "ttl", 0, "Record TTL in seconds (0 keeps the current TTL)")
	setCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the change without submitting it")
	setCmd.Flags().BoolVar(&opts.wait, "wait", false, "Wait until the change is in sync on all Route 53 servers")
	setCmd.Flags().DurationVar(&opts.waitTimeout, "wait-timeout", constants.DefaultChangeMaxWait, "Maximum time to wait with --wait")

	return setCmd
}

func runSet(cmd *cobra.Command, ctx *Context, host string, opts setOptions) error {
	if opts.wait && opts.waitTimeout <= 0 {
		return fmt.Errorf("%w: --wait-timeout must be positive, got %s", domain.ErrValidation, opts.waitTimeout)
	}

	runCtx := cmd.Context()
	log := logger.FromContext(runCtx)

	s, err := ctx.Settings()
	if err != nil {
		return err
	}
	provider, err := ctx.Provider(runCtx, s)
	if err != nil {
		return err
	}
	reconciler := usecase.NewRecordReconciler(provider, ctx.NewResolver(s), usecase.WithDefaultTTL(s.DefaultTTL))

	change, err := reconciler.Plan(runCtx, usecase.SetInput{
		Host:        host,
		IP:          opts.ip,
		UseLocalIP:  opts.localIP,
		UsePublicIP: opts.publicIP,
		TTL:         opts.ttl,
	})
	if err != nil {
		return err
	}

	if opts.dryRun {
		printPlan(ctx, change)
		return nil
	}

	info, err := reconciler.Apply(runCtx, change)
	if err != nil {
		return err
	}
	log.Info("change submitted", "zone_id", change.ZoneID, "change_id", info.ID, "status", info.Status)

	desired := change.Desired
	fmt.Fprintf(ctx.Out, "%s A record %s with value: %s (TTL: %d)\n",
		change.Verb(), recordName(desired), desired.FirstValue(), desired.TTL)
	fmt.Fprintln(ctx.Out, HelpStyle.Render(fmt.Sprintf("Change %s is %s", info.ID, info.Status)))

	if !opts.wait || info.InSync() {
		return nil
	}
	fmt.Fprintln(ctx.Out, HelpStyle.Render("Waiting for the change to propagate..."))
	if err := provider.WaitForChange(runCtx, info.ID, opts.waitTimeout); err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, SuccessStyle.Render(fmt.Sprintf("Change %s is %s", info.ID, entity.ChangeStatusInsync)))
	return nil
}

func printPlan(ctx *Context, change *usecase.RecordChange) {
	desired := change.Desired
	if change.Create {
		fmt.Fprintln(ctx.Out, ChangeCreateStyle.Render(fmt.Sprintf("+ A %s %s (TTL: %d)",
			recordName(desired), strings.Join(desired.Values, ", "), desired.TTL)))
	} else {
		current := change.Original
		fmt.Fprintln(ctx.Out, ChangeDeleteStyle.Render(fmt.Sprintf("- %s %s %s (TTL: %d)",
			current.Type, recordName(current), recordValues(*current), current.TTL)))
		fmt.Fprintln(ctx.Out, ChangeUpdateStyle.Render(fmt.Sprintf("+ A %s %s (TTL: %d)",
			recordName(desired), strings.Join(desired.Values, ", "), desired.TTL)))
	}
	fmt.Fprintln(ctx.Out, HelpStyle.Render(fmt.Sprintf("Dry run: nothing was submitted to zone %s", change.ZoneID)))
}

func recordName(r *entity.ResourceRecordSet) string {
	return strings.TrimSuffix(r.Name, ".")
}
