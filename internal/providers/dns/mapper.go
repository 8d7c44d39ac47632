package dns

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/samber/lo"

	"github.com/lite-lake/infra-r53/internal/domain/entity"
)

func toHostedZone(z types.HostedZone) entity.HostedZone {
	zone := entity.HostedZone{
		ID:              aws.ToString(z.Id),
		Name:            aws.ToString(z.Name),
		CallerReference: aws.ToString(z.CallerReference),
		RecordCount:     aws.ToInt64(z.ResourceRecordSetCount),
	}
	if z.Config != nil {
		zone.Comment = aws.ToString(z.Config.Comment)
		zone.PrivateZone = z.Config.PrivateZone
	}
	return zone
}

func toRecordSet(r types.ResourceRecordSet) entity.ResourceRecordSet {
	record := entity.ResourceRecordSet{
		Name: aws.ToString(r.Name),
		Type: entity.RecordType(r.Type),
		TTL:  aws.ToInt64(r.TTL),
		Values: lo.Map(r.ResourceRecords, func(rr types.ResourceRecord, _ int) string {
			return aws.ToString(rr.Value)
		}),
	}
	if r.AliasTarget != nil {
		record.Alias = &entity.AliasTarget{
			DNSName:              aws.ToString(r.AliasTarget.DNSName),
			HostedZoneID:         aws.ToString(r.AliasTarget.HostedZoneId),
			EvaluateTargetHealth: r.AliasTarget.EvaluateTargetHealth,
		}
	}
	return record
}

func fromRecordSet(r *entity.ResourceRecordSet) *types.ResourceRecordSet {
	out := &types.ResourceRecordSet{
		Name: aws.String(r.Name),
		Type: types.RRType(r.Type),
	}
	if r.Alias != nil {
		out.AliasTarget = &types.AliasTarget{
			DNSName:              aws.String(r.Alias.DNSName),
			HostedZoneId:         aws.String(r.Alias.HostedZoneID),
			EvaluateTargetHealth: r.Alias.EvaluateTargetHealth,
		}
		return out
	}
	out.TTL = aws.Int64(r.TTL)
	out.ResourceRecords = lo.Map(r.Values, func(v string, _ int) types.ResourceRecord {
		return types.ResourceRecord{Value: aws.String(v)}
	})
	return out
}

func fromChangeBatch(batch entity.ChangeBatch) *types.ChangeBatch {
	out := &types.ChangeBatch{
		Changes: lo.Map(batch.Changes, func(c entity.Change, _ int) types.Change {
			return types.Change{
				Action:            types.ChangeAction(c.Action),
				ResourceRecordSet: fromRecordSet(c.RecordSet),
			}
		}),
	}
	if batch.Comment != "" {
		out.Comment = aws.String(batch.Comment)
	}
	return out
}

func toChangeInfo(c *types.ChangeInfo) *entity.ChangeInfo {
	if c == nil {
		return &entity.ChangeInfo{}
	}
	return &entity.ChangeInfo{
		ID:          aws.ToString(c.Id),
		Status:      entity.ChangeStatus(c.Status),
		SubmittedAt: aws.ToTime(c.SubmittedAt),
		Comment:     aws.ToString(c.Comment),
	}
}
