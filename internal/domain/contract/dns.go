package contract

import (
	"context"
	"time"

	"github.com/lite-lake/infra-r53/internal/domain/entity"
)

type DNSProvider interface {
	Name() string
	ListZones(ctx context.Context) ([]entity.HostedZone, error)
	GetZone(ctx context.Context, domain string) (*entity.HostedZone, error)
	DescribeZone(ctx context.Context, zoneID string) (*entity.HostedZone, error)
	ListRecordSets(ctx context.Context, zoneID string) ([]entity.ResourceRecordSet, error)
	CreateRecordSet(ctx context.Context, zoneID string, record *entity.ResourceRecordSet) (*entity.ChangeInfo, error)
	ReplaceRecordSet(ctx context.Context, zoneID string, current, desired *entity.ResourceRecordSet) (*entity.ChangeInfo, error)
	WaitForChange(ctx context.Context, changeID string, maxWait time.Duration) error
}
