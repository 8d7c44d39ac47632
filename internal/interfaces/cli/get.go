package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-r53/internal/domain"
)

func newGetCommand(ctx *Context) *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show a single resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: get needs a target: zone <zoneId>", domain.ErrValidation)
			}
			return fmt.Errorf("%w: unknown get target %q", domain.ErrValidation, args[0])
		},
	}

	getZoneCmd := &cobra.Command{
		Use:   "zone <zoneId>",
		Short: "Show a hosted zone and its name servers",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGetZone(cmd, ctx, args[0])
		},
	}

	getCmd.AddCommand(getZoneCmd)
	return getCmd
}

func runGetZone(cmd *cobra.Command, ctx *Context, zoneID string) error {
	query, err := newZoneQuery(cmd, ctx)
	if err != nil {
		return err
	}
	zone, err := query.DescribeZone(cmd.Context(), zoneID)
	if err != nil {
		return err
	}

	renderDetails(ctx.Out, zone.DomainName(), []detailLine{
		{"id", zone.ID},
		{"name", zone.Name},
		{"caller reference", zone.CallerReference},
		{"comment", zone.Comment},
		{"private zone", strconv.FormatBool(zone.PrivateZone)},
		{"record count", strconv.FormatInt(zone.RecordCount, 10)},
		{"name servers", strings.Join(zone.NameServers, ", ")},
	})
	return nil
}
