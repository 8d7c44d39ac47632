package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/domain/entity"
)

type replaceCall struct {
	zoneID  string
	current *entity.ResourceRecordSet
	desired *entity.ResourceRecordSet
}

type createCall struct {
	zoneID string
	record *entity.ResourceRecordSet
}

type mockDNSProvider struct {
	zones   []entity.HostedZone
	records map[string][]entity.ResourceRecordSet
	err     error
	listErr error

	getZoneArgs []string
	created     []createCall
	replaced    []replaceCall
}

func newMockDNSProvider() *mockDNSProvider {
	return &mockDNSProvider{records: make(map[string][]entity.ResourceRecordSet)}
}

func (m *mockDNSProvider) Name() string { return "mock" }

func (m *mockDNSProvider) ListZones(ctx context.Context) ([]entity.HostedZone, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]entity.HostedZone(nil), m.zones...), nil
}

func (m *mockDNSProvider) GetZone(ctx context.Context, name string) (*entity.HostedZone, error) {
	m.getZoneArgs = append(m.getZoneArgs, name)
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.zones {
		if m.zones[i].MatchesDomain(name) {
			z := m.zones[i]
			return &z, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, name)
}

func (m *mockDNSProvider) DescribeZone(ctx context.Context, zoneID string) (*entity.HostedZone, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.zones {
		if m.zones[i].ID == zoneID || m.zones[i].ShortID() == zoneID {
			z := m.zones[i]
			return &z, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrZoneNotFound, zoneID)
}

func (m *mockDNSProvider) ListRecordSets(ctx context.Context, zoneID string) ([]entity.ResourceRecordSet, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]entity.ResourceRecordSet, 0, len(m.records[zoneID]))
	for _, r := range m.records[zoneID] {
		out = append(out, *r.Clone())
	}
	return out, nil
}

func (m *mockDNSProvider) CreateRecordSet(ctx context.Context, zoneID string, record *entity.ResourceRecordSet) (*entity.ChangeInfo, error) {
	m.created = append(m.created, createCall{zoneID: zoneID, record: record})
	if m.err != nil {
		return nil, m.err
	}
	return &entity.ChangeInfo{ID: "/change/C1", Status: entity.ChangeStatusPending}, nil
}

func (m *mockDNSProvider) ReplaceRecordSet(ctx context.Context, zoneID string, current, desired *entity.ResourceRecordSet) (*entity.ChangeInfo, error) {
	m.replaced = append(m.replaced, replaceCall{zoneID: zoneID, current: current, desired: desired})
	if m.err != nil {
		return nil, m.err
	}
	return &entity.ChangeInfo{ID: "/change/C2", Status: entity.ChangeStatusPending}, nil
}

func (m *mockDNSProvider) WaitForChange(ctx context.Context, changeID string, maxWait time.Duration) error {
	return nil
}

func (m *mockDNSProvider) mutatingCalls() int {
	return len(m.created) + len(m.replaced)
}

type mockResolver struct {
	publicIP  string
	localIP   string
	err       error
	publicHit int
	localHit  int
}

func (m *mockResolver) PublicIP(ctx context.Context) (string, error) {
	m.publicHit++
	return m.publicIP, m.err
}

func (m *mockResolver) LocalIP(ctx context.Context) (string, error) {
	m.localHit++
	return m.localIP, m.err
}

func sameValues(a, b []string) bool {
	return strings.Join(a, ",") == strings.Join(b, ",")
}
