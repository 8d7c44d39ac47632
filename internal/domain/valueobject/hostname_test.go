package valueobject

import (
	"errors"
	"strings"
	"testing"

	"github.com/lite-lake/infra-r53/internal/domain"
)

func TestParseHostname(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Hostname
		wantErr bool
	}{
		{"subdomain", "sub.domain.com", "sub.domain.com", false},
		{"trailing dot", "sub.domain.com.", "sub.domain.com", false},
		{"surrounding space", "  sub.domain.com ", "sub.domain.com", false},
		{"case preserved", "Sub.Domain.com", "Sub.Domain.com", false},
		{"bare domain", "domain.com", "domain.com", false},
		{"empty", "", "", true},
		{"single label", "localhost", "", true},
		{"empty label", "sub..domain.com", "", true},
		{"label too long", strings.Repeat("a", 64) + ".domain.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHostname(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidHost) {
					t.Errorf("ParseHostname(%q) error = %v, want ErrInvalidHost", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHostname(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHostname(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHostname_Domain(t *testing.T) {
	tests := []struct {
		host Hostname
		want string
	}{
		{"sub.domain.com", "domain.com"},
		{"a.b.domain.com", "domain.com"},
		{"a.b.domain.co.uk", "domain.co.uk"},
		{"domain.com", "domain.com"},
		{"Sub.Domain.com", "domain.com"},
	}

	for _, tt := range tests {
		got, err := tt.host.Domain()
		if err != nil {
			t.Errorf("%q.Domain() unexpected error = %v", tt.host, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q.Domain() = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestHostname_DomainPublicSuffix(t *testing.T) {
	for _, host := range []Hostname{"co.uk", "com"} {
		if _, err := host.Domain(); !errors.Is(err, domain.ErrInvalidHost) {
			t.Errorf("%q.Domain() error = %v, want ErrInvalidHost", host, err)
		}
	}
}

func TestHostname_Lower(t *testing.T) {
	if got := Hostname("Sub.Domain.COM").Lower(); got != "sub.domain.com" {
		t.Errorf("Lower() = %q", got)
	}
}
