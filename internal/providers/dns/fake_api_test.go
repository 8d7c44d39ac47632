package dns

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

type fakeAPI struct {
	zonePages   []*route53.ListHostedZonesOutput
	recordPages []*route53.ListResourceRecordSetsOutput
	hostedZone  *route53.GetHostedZoneOutput
	changeInfo  *types.ChangeInfo
	changeStats []types.ChangeStatus

	err error

	zoneInputs   []*route53.ListHostedZonesInput
	recordInputs []*route53.ListResourceRecordSetsInput
	changes      []*route53.ChangeResourceRecordSetsInput
	getChanges   int
}

func (f *fakeAPI) ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error) {
	f.zoneInputs = append(f.zoneInputs, params)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.zonePages) == 0 {
		return &route53.ListHostedZonesOutput{}, nil
	}
	idx := len(f.zoneInputs) - 1
	if idx >= len(f.zonePages) {
		idx = len(f.zonePages) - 1
	}
	return f.zonePages[idx], nil
}

func (f *fakeAPI) GetHostedZone(ctx context.Context, params *route53.GetHostedZoneInput, optFns ...func(*route53.Options)) (*route53.GetHostedZoneOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hostedZone, nil
}

func (f *fakeAPI) ListResourceRecordSets(ctx context.Context, params *route53.ListResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ListResourceRecordSetsOutput, error) {
	f.recordInputs = append(f.recordInputs, params)
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return nil, context.DeadlineExceeded
	}
	if len(f.recordPages) == 0 {
		return &route53.ListResourceRecordSetsOutput{}, nil
	}
	idx := len(f.recordInputs) - 1
	if idx >= len(f.recordPages) {
		idx = len(f.recordPages) - 1
	}
	return f.recordPages[idx], nil
}

func (f *fakeAPI) ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error) {
	f.changes = append(f.changes, params)
	if f.err != nil {
		return nil, f.err
	}
	return &route53.ChangeResourceRecordSetsOutput{ChangeInfo: f.changeInfo}, nil
}

func (f *fakeAPI) GetChange(ctx context.Context, params *route53.GetChangeInput, optFns ...func(*route53.Options)) (*route53.GetChangeOutput, error) {
	f.getChanges++
	if f.err != nil {
		return nil, f.err
	}
	status := types.ChangeStatusInsync
	if f.getChanges <= len(f.changeStats) {
		status = f.changeStats[f.getChanges-1]
	}
	return &route53.GetChangeOutput{
		ChangeInfo: &types.ChangeInfo{
			Id:          params.Id,
			Status:      status,
			SubmittedAt: aws.Time(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
		},
	}, nil
}

func hostedZone(id, name string) types.HostedZone {
	return types.HostedZone{
		Id:                     aws.String(id),
		Name:                   aws.String(name),
		CallerReference:        aws.String("ref-" + name),
		ResourceRecordSetCount: aws.Int64(3),
		Config:                 &types.HostedZoneConfig{Comment: aws.String("managed"), PrivateZone: false},
	}
}

func aRecord(name string, ttl int64, values ...string) types.ResourceRecordSet {
	rrs := make([]types.ResourceRecord, 0, len(values))
	for _, v := range values {
		rrs = append(rrs, types.ResourceRecord{Value: aws.String(v)})
	}
	return types.ResourceRecordSet{
		Name:            aws.String(name),
		Type:            types.RRTypeA,
		TTL:             aws.Int64(ttl),
		ResourceRecords: rrs,
	}
}
