package entity

import (
	"strings"
)

const hostedZonePrefix = "/hostedzone/"

type HostedZone struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	CallerReference string   `yaml:"caller_reference" json:"caller_reference"`
	Comment         string   `yaml:"comment,omitempty" json:"comment,omitempty"`
	PrivateZone     bool     `yaml:"private_zone" json:"private_zone"`
	RecordCount     int64    `yaml:"record_count" json:"record_count"`
	NameServers     []string `yaml:"name_servers,omitempty" json:"name_servers,omitempty"`
}

func (z *HostedZone) ShortID() string {
	return strings.TrimPrefix(z.ID, hostedZonePrefix)
}

// DomainName is the zone name without the trailing dot.
func (z *HostedZone) DomainName() string {
	return strings.TrimSuffix(z.Name, ".")
}

// MatchesDomain reports whether the zone name starts with domain, ignoring case.
func (z *HostedZone) MatchesDomain(domain string) bool {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), ".")
	if domain == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(z.DomainName()), strings.ToLower(domain))
}
