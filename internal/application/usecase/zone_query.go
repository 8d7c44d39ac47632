package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/lite-lake/infra-r53/internal/domain/contract"
	"github.com/lite-lake/infra-r53/internal/domain/entity"
)

type ZoneQuery struct {
	provider contract.DNSProvider
}

func NewZoneQuery(provider contract.DNSProvider) *ZoneQuery {
	return &ZoneQuery{provider: provider}
}

// ListZones returns all zones ordered by name.
func (q *ZoneQuery) ListZones(ctx context.Context) ([]entity.HostedZone, error) {
	zones, err := q.provider.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(zones, func(i, j int) bool {
		return strings.ToLower(zones[i].Name) < strings.ToLower(zones[j].Name)
	})
	return zones, nil
}

// ListRecordSets keeps the provider's order, which groups records by name.
func (q *ZoneQuery) ListRecordSets(ctx context.Context, zoneID string) ([]entity.ResourceRecordSet, error) {
	return q.provider.ListRecordSets(ctx, zoneID)
}

func (q *ZoneQuery) DescribeZone(ctx context.Context, zoneID string) (*entity.HostedZone, error) {
	return q.provider.DescribeZone(ctx, zoneID)
}
