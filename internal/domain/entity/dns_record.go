package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lite-lake/infra-r53/internal/domain"
)

type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeSOA   RecordType = "SOA"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeTXT   RecordType = "TXT"
)

var recordTypes = []RecordType{
	RecordTypeA,
	RecordTypeAAAA,
	RecordTypeCNAME,
	RecordTypeMX,
	RecordTypeNS,
	RecordTypePTR,
	RecordTypeSOA,
	RecordTypeSPF,
	RecordTypeSRV,
	RecordTypeTXT,
}

func (t RecordType) Valid() bool {
	return slices.Contains(recordTypes, t)
}

// AliasTarget points a record at another AWS resource instead of carrying values.
type AliasTarget struct {
	DNSName              string `yaml:"dns_name" json:"dns_name"`
	HostedZoneID         string `yaml:"hosted_zone_id" json:"hosted_zone_id"`
	EvaluateTargetHealth bool   `yaml:"evaluate_target_health" json:"evaluate_target_health"`
}

// ResourceRecordSet is a named, typed set of values. Name is kept exactly as
// the provider returned it, trailing dot included.
type ResourceRecordSet struct {
	Name   string     `yaml:"name" json:"name"`
	Type   RecordType `yaml:"type" json:"type"`
	TTL    int64      `yaml:"ttl" json:"ttl"`
	Values []string   `yaml:"values" json:"values"`

	Alias *AliasTarget `yaml:"alias,omitempty" json:"alias,omitempty"`
}

func (r *ResourceRecordSet) Clone() *ResourceRecordSet {
	if r == nil {
		return nil
	}
	clone := &ResourceRecordSet{
		Name:   r.Name,
		Type:   r.Type,
		TTL:    r.TTL,
		Values: slices.Clone(r.Values),
	}
	if r.Alias != nil {
		alias := *r.Alias
		clone.Alias = &alias
	}
	return clone
}

// NameMatches reports whether the record name starts with host, ignoring case.
// Provider names carry a trailing dot, so an exact comparison would never hit.
func (r *ResourceRecordSet) NameMatches(host string) bool {
	if host == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(r.Name), strings.ToLower(host))
}

func (r *ResourceRecordSet) FirstValue() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

func (r *ResourceRecordSet) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidType, r.Type)
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: ttl must be non-negative", domain.ErrInvalidTTL)
	}
	return nil
}
