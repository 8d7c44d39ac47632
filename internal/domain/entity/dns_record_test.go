package entity

import (
	"errors"
	"testing"

	"github.com/lite-lake/infra-r53/internal/domain"
)

func TestResourceRecordSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		record  ResourceRecordSet
		wantErr error
	}{
		{
			name:    "invalid type",
			record:  ResourceRecordSet{Type: "INVALID", Name: "www.example.com.", Values: []string{"192.168.1.1"}, TTL: 300},
			wantErr: domain.ErrInvalidType,
		},
		{
			name:    "missing name",
			record:  ResourceRecordSet{Type: RecordTypeA, Values: []string{"192.168.1.1"}, TTL: 300},
			wantErr: domain.ErrRequired,
		},
		{
			name:    "negative ttl",
			record:  ResourceRecordSet{Type: RecordTypeA, Name: "www.example.com.", TTL: -1},
			wantErr: domain.ErrInvalidTTL,
		},
		{
			name:    "valid A",
			record:  ResourceRecordSet{Type: RecordTypeA, Name: "www.example.com.", Values: []string{"192.168.1.1"}, TTL: 300},
			wantErr: nil,
		},
		{
			name:    "valid SOA",
			record:  ResourceRecordSet{Type: RecordTypeSOA, Name: "example.com.", Values: []string{"ns-1.awsdns-00.com. hostmaster.example.com. 1 7200 900 1209600 86400"}, TTL: 900},
			wantErr: nil,
		},
		{
			name:    "valid zero ttl",
			record:  ResourceRecordSet{Type: RecordTypeA, Name: "www.example.com.", TTL: 0},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestResourceRecordSet_NameMatches(t *testing.T) {
	record := ResourceRecordSet{Name: "Sub.Domain.com.", Type: RecordTypeA}

	tests := []struct {
		host string
		want bool
	}{
		{"sub.domain.com", true},
		{"SUB.DOMAIN.COM", true},
		{"sub.domain.com.", true},
		{"sub", true},
		{"other.domain.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := record.NameMatches(tt.host); got != tt.want {
				t.Errorf("NameMatches(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestResourceRecordSet_Clone(t *testing.T) {
	original := &ResourceRecordSet{Name: "a.example.com.", Type: RecordTypeA, TTL: 60, Values: []string{"10.0.0.1"}}
	clone := original.Clone()

	clone.Values[0] = "10.0.0.2"
	clone.TTL = 300

	if original.Values[0] != "10.0.0.1" {
		t.Errorf("clone shares values with original: %v", original.Values)
	}
	if original.TTL != 60 {
		t.Errorf("original TTL changed to %d", original.TTL)
	}

	aliased := &ResourceRecordSet{Name: "b.example.com.", Type: RecordTypeA, Alias: &AliasTarget{DNSName: "lb.example.net."}}
	aliasClone := aliased.Clone()
	aliasClone.Alias.DNSName = "other.example.net."
	if aliased.Alias.DNSName != "lb.example.net." {
		t.Errorf("clone shares alias with original: %+v", aliased.Alias)
	}

	var nilRecord *ResourceRecordSet
	if nilRecord.Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

func TestResourceRecordSet_FirstValue(t *testing.T) {
	empty := ResourceRecordSet{}
	if empty.FirstValue() != "" {
		t.Errorf("FirstValue() = %q, want empty", empty.FirstValue())
	}

	multi := ResourceRecordSet{Values: []string{"10.0.0.1", "10.0.0.2"}}
	if multi.FirstValue() != "10.0.0.1" {
		t.Errorf("FirstValue() = %q, want 10.0.0.1", multi.FirstValue())
	}
}

func TestRecordType_Valid(t *testing.T) {
	for _, rt := range []RecordType{"A", "AAAA", "CNAME", "MX", "NS", "PTR", "SOA", "SPF", "SRV", "TXT"} {
		if !rt.Valid() {
			t.Errorf("%s should be valid", rt)
		}
	}
	for _, rt := range []RecordType{"", "a", "CAA", "ALIAS"} {
		if rt.Valid() {
			t.Errorf("%q should be invalid", rt)
		}
	}
}
