package valueobject

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/lite-lake/infra-r53/internal/domain"
)

// Hostname is a fully-qualified host as typed by the user, without the
// trailing root dot.
type Hostname string

func ParseHostname(s string) (Hostname, error) {
	h := strings.TrimSuffix(strings.TrimSpace(s), ".")
	if h == "" {
		return "", fmt.Errorf("%w: host is empty", domain.ErrInvalidHost)
	}
	labels := strings.Split(h, ".")
	if len(labels) < 2 {
		return "", fmt.Errorf("%w: %q has no domain part", domain.ErrInvalidHost, s)
	}
	for _, l := range labels {
		if l == "" {
			return "", fmt.Errorf("%w: %q has an empty label", domain.ErrInvalidHost, s)
		}
		if len(l) > 63 {
			return "", fmt.Errorf("%w: label %q exceeds 63 characters", domain.ErrInvalidHost, l)
		}
	}
	return Hostname(h), nil
}

func (h Hostname) String() string {
	return string(h)
}

// Lower is the form used when a new record name has to be synthesized.
func (h Hostname) Lower() string {
	return strings.ToLower(string(h))
}

// Domain is the registrable root of the host according to the public suffix
// list: a.b.domain.co.uk -> domain.co.uk. The result is lower-cased.
func (h Hostname) Domain() (string, error) {
	apex, err := publicsuffix.EffectiveTLDPlusOne(h.Lower())
	if err != nil {
		return "", fmt.Errorf("%w: %q has no registrable domain: %v", domain.ErrInvalidHost, string(h), err)
	}
	return apex, nil
}
