package usecase

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/domain/contract"
	"github.com/lite-lake/infra-r53/internal/domain/entity"
	"github.com/lite-lake/infra-r53/internal/domain/valueobject"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
)

// SetInput describes the desired state of one A record. At most one value
// source is used: IP, then UsePublicIP, then UseLocalIP.
type SetInput struct {
	Host        string
	IP          string
	UseLocalIP  bool
	UsePublicIP bool
	TTL         int64
}

// RecordChange is the outcome of planning: what will be sent to the provider.
type RecordChange struct {
	ZoneID   string
	ZoneName string
	Create   bool
	// Original is the stored record being replaced; nil when Create is set.
	Original *entity.ResourceRecordSet
	Desired  *entity.ResourceRecordSet
}

func (c *RecordChange) Verb() string {
	if c.Create {
		return "Created"
	}
	return "Updated"
}

type RecordReconciler struct {
	provider   contract.DNSProvider
	resolver   contract.IPResolver
	defaultTTL int64
}

type ReconcilerOption func(*RecordReconciler)

// WithDefaultTTL sets the TTL given to records that do not exist yet.
func WithDefaultTTL(ttl int64) ReconcilerOption {
	return func(r *RecordReconciler) {
		if ttl > 0 {
			r.defaultTTL = ttl
		}
	}
}

func NewRecordReconciler(provider contract.DNSProvider, resolver contract.IPResolver, opts ...ReconcilerOption) *RecordReconciler {
	r := &RecordReconciler{
		provider:   provider,
		resolver:   resolver,
		defaultTTL: constants.DefaultRecordTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plan works out the change without touching the zone.
func (r *RecordReconciler) Plan(ctx context.Context, in SetInput) (*RecordChange, error) {
	host, err := validateInput(in)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).With("host", host.String())

	zoneDomain, err := host.Domain()
	if err != nil {
		return nil, err
	}
	zone, err := r.provider.GetZone(ctx, zoneDomain)
	if err != nil {
		return nil, domain.WrapOp("unable to load "+zoneDomain, err)
	}
	log.Debug("found hosted zone", "zone_id", zone.ID, "zone", zone.Name)

	records, err := r.provider.ListRecordSets(ctx, zone.ID)
	if err != nil {
		return nil, err
	}

	change := &RecordChange{ZoneID: zone.ID, ZoneName: zone.Name}

	match := findRecord(records, host.String())
	if match == nil {
		match = &entity.ResourceRecordSet{
			Name: host.Lower(),
			Type: entity.RecordTypeA,
			TTL:  r.defaultTTL,
		}
		change.Create = true
		log.Debug("no existing record, will create", "ttl", r.defaultTTL)
	} else {
		change.Original = match.Clone()
		log.Debug("matched existing record", "name", match.Name, "ttl", match.TTL, "values", match.Values)
	}

	desired := &entity.ResourceRecordSet{
		Name:   match.Name,
		Type:   entity.RecordTypeA,
		TTL:    match.TTL,
		Values: append([]string(nil), match.Values...),
	}

	if in.TTL > 0 {
		desired.TTL = in.TTL
	}

	value, replace, err := r.selectValue(ctx, in)
	if err != nil {
		return nil, err
	}
	if replace {
		desired.Values = nil
		if value != "" {
			desired.Values = []string{value}
		}
	}

	if len(desired.Values) == 0 {
		return nil, domain.ErrNothingToChange
	}

	change.Desired = desired
	return change, nil
}

// selectValue returns the new record value and whether it replaces the
// existing values. replace is false when no value source was requested.
func (r *RecordReconciler) selectValue(ctx context.Context, in SetInput) (string, bool, error) {
	switch {
	case in.IP != "":
		return in.IP, true, nil
	case in.UsePublicIP:
		ip, err := r.resolver.PublicIP(ctx)
		if err != nil {
			return "", false, err
		}
		return ip, true, nil
	case in.UseLocalIP:
		ip, err := r.resolver.LocalIP(ctx)
		if err != nil {
			return "", false, err
		}
		return ip, true, nil
	default:
		return "", false, nil
	}
}

// Apply submits the planned change. A desired record that fails validation is
// rejected before any remote call.
func (r *RecordReconciler) Apply(ctx context.Context, change *RecordChange) (*entity.ChangeInfo, error) {
	if err := change.Desired.Validate(); err != nil {
		return nil, err
	}
	if change.Create {
		return r.provider.CreateRecordSet(ctx, change.ZoneID, change.Desired)
	}
	return r.provider.ReplaceRecordSet(ctx, change.ZoneID, change.Original, change.Desired)
}

func (r *RecordReconciler) Set(ctx context.Context, in SetInput) (*RecordChange, *entity.ChangeInfo, error) {
	change, err := r.Plan(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	info, err := r.Apply(ctx, change)
	if err != nil {
		return change, nil, err
	}
	return change, info, nil
}

func findRecord(records []entity.ResourceRecordSet, host string) *entity.ResourceRecordSet {
	for i := range records {
		if records[i].NameMatches(host) {
			return &records[i]
		}
	}
	return nil
}

func validateInput(in SetInput) (valueobject.Hostname, error) {
	host, err := valueobject.ParseHostname(in.Host)
	if err != nil {
		return "", err
	}
	if in.TTL < 0 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidTTL, in.TTL)
	}
	if in.IP != "" {
		addr, err := netip.ParseAddr(in.IP)
		if err != nil || !addr.Is4() {
			return "", fmt.Errorf("%w: %q is not an IPv4 address", domain.ErrInvalidIP, in.IP)
		}
	}
	return host, nil
}
