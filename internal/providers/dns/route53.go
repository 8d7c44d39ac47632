package dns

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/samber/lo"

	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/domain/contract"
	"github.com/lite-lake/infra-r53/internal/domain/entity"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
)

type Route53Provider struct {
	api         API
	listTimeout time.Duration
	pollDelay   time.Duration
}

type Option func(*Route53Provider)

// WithListTimeout bounds a whole ListRecordSets call, all pages included.
func WithListTimeout(d time.Duration) Option {
	return func(p *Route53Provider) {
		if d > 0 {
			p.listTimeout = d
		}
	}
}

// WithPollDelay sets the interval between GetChange polls in WaitForChange.
func WithPollDelay(d time.Duration) Option {
	return func(p *Route53Provider) {
		if d > 0 {
			p.pollDelay = d
		}
	}
}

func NewRoute53Provider(api API, opts ...Option) *Route53Provider {
	p := &Route53Provider{
		api:         api,
		listTimeout: constants.DefaultListTimeout,
		pollDelay:   constants.DefaultChangePollDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig builds the provider on a real Route 53 client.
func NewFromConfig(cfg aws.Config, opts ...Option) *Route53Provider {
	return NewRoute53Provider(route53.NewFromConfig(cfg), opts...)
}

var _ contract.DNSProvider = (*Route53Provider)(nil)

func (p *Route53Provider) Name() string {
	return "route53"
}

func (p *Route53Provider) ListZones(ctx context.Context) ([]entity.HostedZone, error) {
	var zones []entity.HostedZone
	input := &route53.ListHostedZonesInput{}

	for {
		var out *route53.ListHostedZonesOutput
		err := logger.TimedOperation(ctx, "ListHostedZones", func() error {
			var err error
			out, err = p.api.ListHostedZones(ctx, input)
			return err
		})
		if err != nil {
			return nil, translateError("list hosted zones", err)
		}

		zones = append(zones, lo.Map(out.HostedZones, func(z types.HostedZone, _ int) entity.HostedZone {
			return toHostedZone(z)
		})...)

		if !out.IsTruncated || aws.ToString(out.NextMarker) == "" {
			return zones, nil
		}
		input = &route53.ListHostedZonesInput{Marker: out.NextMarker}
	}
}

func (p *Route53Provider) GetZone(ctx context.Context, domainName string) (*entity.HostedZone, error) {
	zones, err := p.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	zone, ok := lo.Find(zones, func(z entity.HostedZone) bool {
		return z.MatchesDomain(domainName)
	})
	if !ok {
		return nil, fmt.Errorf("%w: no zone matches %s", domain.ErrZoneNotFound, domainName)
	}
	return &zone, nil
}

func (p *Route53Provider) DescribeZone(ctx context.Context, zoneID string) (*entity.HostedZone, error) {
	var out *route53.GetHostedZoneOutput
	err := logger.TimedOperation(ctx, "GetHostedZone", func() error {
		var err error
		out, err = p.api.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: aws.String(zoneID)})
		return err
	})
	if err != nil {
		return nil, translateError("get hosted zone "+zoneID, err)
	}
	if out.HostedZone == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, zoneID)
	}

	zone := toHostedZone(*out.HostedZone)
	if out.DelegationSet != nil {
		zone.NameServers = out.DelegationSet.NameServers
	}
	return &zone, nil
}

func (p *Route53Provider) ListRecordSets(ctx context.Context, zoneID string) ([]entity.ResourceRecordSet, error) {
	ctx, cancel := context.WithTimeout(ctx, p.listTimeout)
	defer cancel()

	var records []entity.ResourceRecordSet
	input := &route53.ListResourceRecordSetsInput{HostedZoneId: aws.String(zoneID)}

	for {
		var out *route53.ListResourceRecordSetsOutput
		err := logger.TimedOperation(ctx, "ListResourceRecordSets", func() error {
			var err error
			out, err = p.api.ListResourceRecordSets(ctx, input)
			return err
		})
		if err != nil {
			return nil, translateError("list resource record sets", err)
		}

		records = append(records, lo.Map(out.ResourceRecordSets, func(r types.ResourceRecordSet, _ int) entity.ResourceRecordSet {
			return toRecordSet(r)
		})...)

		if !out.IsTruncated {
			return records, nil
		}
		input = &route53.ListResourceRecordSetsInput{
			HostedZoneId:          aws.String(zoneID),
			StartRecordName:       out.NextRecordName,
			StartRecordType:       out.NextRecordType,
			StartRecordIdentifier: out.NextRecordIdentifier,
		}
	}
}

func (p *Route53Provider) CreateRecordSet(ctx context.Context, zoneID string, record *entity.ResourceRecordSet) (*entity.ChangeInfo, error) {
	return p.submit(ctx, zoneID, entity.CreateBatch(record))
}

func (p *Route53Provider) ReplaceRecordSet(ctx context.Context, zoneID string, current, desired *entity.ResourceRecordSet) (*entity.ChangeInfo, error) {
	return p.submit(ctx, zoneID, entity.ReplaceBatch(current, desired))
}

func (p *Route53Provider) submit(ctx context.Context, zoneID string, batch entity.ChangeBatch) (*entity.ChangeInfo, error) {
	var out *route53.ChangeResourceRecordSetsOutput
	err := logger.TimedOperation(ctx, "ChangeResourceRecordSets", func() error {
		var err error
		out, err = p.api.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
			HostedZoneId: aws.String(zoneID),
			ChangeBatch:  fromChangeBatch(batch),
		})
		return err
	})
	if err != nil {
		return nil, translateError("change resource record sets", err)
	}
	return toChangeInfo(out.ChangeInfo), nil
}

func (p *Route53Provider) WaitForChange(ctx context.Context, changeID string, maxWait time.Duration) error {
	waiter := route53.NewResourceRecordSetsChangedWaiter(p.api, func(o *route53.ResourceRecordSetsChangedWaiterOptions) {
		o.MinDelay = p.pollDelay
		if o.MaxDelay < p.pollDelay {
			o.MaxDelay = p.pollDelay
		}
	})

	err := logger.TimedOperation(ctx, "GetChange", func() error {
		return waiter.Wait(ctx, &route53.GetChangeInput{Id: aws.String(changeID)}, maxWait)
	})
	return translateError("wait for change "+changeID, err)
}
