package network

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"

	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/domain/contract"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
)

type Source string

const (
	// SourceEcho asks an HTTP endpoint that answers with the caller's address.
	SourceEcho Source = "echo"
	// SourceIMDS reads EC2 instance metadata. Only works on EC2.
	SourceIMDS Source = "imds"
)

// MetadataClient is the part of *imds.Client the resolver calls.
type MetadataClient interface {
	GetMetadata(ctx context.Context, params *imds.GetMetadataInput, optFns ...func(*imds.Options)) (*imds.GetMetadataOutput, error)
}

type Resolver struct {
	source     Source
	endpoint   string
	httpClient *http.Client
	metadata   MetadataClient
	interfaces func() ([]net.Addr, error)
}

type Option func(*Resolver)

func WithSource(s Source) Option {
	return func(r *Resolver) {
		if s != "" {
			r.source = s
		}
	}
}

func WithEndpoint(url string) Option {
	return func(r *Resolver) {
		if url != "" {
			r.endpoint = url
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.httpClient = &http.Client{Timeout: d}
		}
	}
}

func WithMetadataClient(c MetadataClient) Option {
	return func(r *Resolver) {
		r.metadata = c
	}
}

func withInterfaceAddrs(fn func() ([]net.Addr, error)) Option {
	return func(r *Resolver) {
		r.interfaces = fn
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		source:     SourceEcho,
		endpoint:   constants.DefaultPublicIPEndpoint,
		httpClient: &http.Client{Timeout: constants.DefaultPublicIPTimeout},
		interfaces: net.InterfaceAddrs,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.source == SourceIMDS && r.metadata == nil {
		r.metadata = imds.New(imds.Options{})
	}
	return r
}

var _ contract.IPResolver = (*Resolver)(nil)

func (r *Resolver) PublicIP(ctx context.Context) (string, error) {
	switch r.source {
	case SourceIMDS:
		return r.fromMetadata(ctx, "public-ipv4")
	case SourceEcho:
		return r.fromEcho(ctx)
	default:
		return "", fmt.Errorf("%w: unknown public IP source %q", domain.ErrConfiguration, r.source)
	}
}

func (r *Resolver) LocalIP(ctx context.Context) (string, error) {
	if r.source == SourceIMDS {
		return r.fromMetadata(ctx, "local-ipv4")
	}

	addrs, err := r.interfaces()
	if err != nil {
		return "", fmt.Errorf("%w: listing interface addresses: %w", domain.ErrResolution, err)
	}
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			logger.FromContext(ctx).Debug("resolved local IP", "ip", v4.String())
			return v4.String(), nil
		}
	}
	logger.FromContext(ctx).Debug("no local IPv4 address found")
	return "", nil
}

func (r *Resolver) fromEcho(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building request for %s: %w", domain.ErrResolution, r.endpoint, err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", constants.AppName)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: unable to determine public IP address from %s: %w", domain.ErrResolution, r.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unable to determine public IP address from %s: %s", domain.ErrResolution, r.endpoint, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", fmt.Errorf("%w: reading response from %s: %w", domain.ErrResolution, r.endpoint, err)
	}

	ip, err := parseAddr(string(body))
	if err != nil {
		return "", fmt.Errorf("%w: %s returned %w", domain.ErrResolution, r.endpoint, err)
	}
	logger.FromContext(ctx).Debug("resolved public IP", "ip", ip, "endpoint", r.endpoint)
	return ip, nil
}

func (r *Resolver) fromMetadata(ctx context.Context, key string) (string, error) {
	out, err := r.metadata.GetMetadata(ctx, &imds.GetMetadataInput{Path: key})
	if err != nil {
		return "", fmt.Errorf("%w: unable to determine %s from instance metadata: %w", domain.ErrResolution, key, err)
	}
	defer out.Content.Close()

	body, err := io.ReadAll(io.LimitReader(out.Content, 256))
	if err != nil {
		return "", fmt.Errorf("%w: reading instance metadata %s: %w", domain.ErrResolution, key, err)
	}

	ip, err := parseAddr(string(body))
	if err != nil {
		return "", fmt.Errorf("%w: instance metadata %s: %w", domain.ErrResolution, key, err)
	}
	logger.FromContext(ctx).Debug("resolved IP from instance metadata", "key", key, "ip", ip)
	return ip, nil
}

func parseAddr(s string) (string, error) {
	s = strings.TrimSpace(s)
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return "", fmt.Errorf("not an IP address: %q", s)
	}
	addr = addr.Unmap()
	if !addr.Is4() {
		return "", fmt.Errorf("not an IPv4 address: %q", s)
	}
	return addr.String(), nil
}
