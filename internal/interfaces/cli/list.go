package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-r53/internal/application/usecase"
	"github.com/lite-lake/infra-r53/internal/domain"
)

func newListCommand(ctx *Context) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List hosted zones or record sets",
		Long:  "List all hosted zones, or all record sets of one hosted zone.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: list needs a target: zones, or zone <zoneId>", domain.ErrValidation)
			}
			return fmt.Errorf("%w: unknown list target %q", domain.ErrValidation, args[0])
		},
	}

	listZonesCmd := &cobra.Command{
		Use:   "zones",
		Short: "List hosted zones",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListZones(cmd, ctx)
		},
	}

	listZoneCmd := &cobra.Command{
		Use:   "zone <zoneId>",
		Short: "List the record sets of a hosted zone",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListZone(cmd, ctx, args[0])
		},
	}

	listCmd.AddCommand(listZonesCmd, listZoneCmd)
	return listCmd
}

func newZoneQuery(cmd *cobra.Command, ctx *Context) (*usecase.ZoneQuery, error) {
	s, err := ctx.Settings()
	if err != nil {
		return nil, err
	}
	provider, err := ctx.Provider(cmd.Context(), s)
	if err != nil {
		return nil, err
	}
	return usecase.NewZoneQuery(provider), nil
}

func runListZones(cmd *cobra.Command, ctx *Context) error {
	query, err := newZoneQuery(cmd, ctx)
	if err != nil {
		return err
	}
	zones, err := query.ListZones(cmd.Context())
	if err != nil {
		return err
	}
	renderZones(ctx.Out, zones)
	return nil
}

func runListZone(cmd *cobra.Command, ctx *Context, zoneID string) error {
	query, err := newZoneQuery(cmd, ctx)
	if err != nil {
		return err
	}
	records, err := query.ListRecordSets(cmd.Context(), zoneID)
	if err != nil {
		return err
	}
	renderRecordSets(ctx.Out, records)
	return nil
}
