package cli

import (
	"context"
	"io"
	"os"

	"github.com/lite-lake/infra-r53/internal/config"
	"github.com/lite-lake/infra-r53/internal/domain/contract"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
	"github.com/lite-lake/infra-r53/internal/infrastructure/network"
	"github.com/lite-lake/infra-r53/internal/providers/dns"
)

type GlobalOptions struct {
	ConfigFile       string
	Region           string
	Profile          string
	ProfilesLocation string
	LogFormat        string
	Debug            bool
	ShowVersion      bool
}

// Context holds what every command needs. The factories are swapped out in
// tests so no command talks to AWS.
type Context struct {
	Options GlobalOptions
	Out     io.Writer
	Err     io.Writer

	NewProvider func(ctx context.Context, s *config.Settings) (contract.DNSProvider, error)
	NewResolver func(s *config.Settings) contract.IPResolver

	log *logger.Logger
}

func NewContext() *Context {
	return &Context{
		Out:         os.Stdout,
		Err:         os.Stderr,
		NewProvider: newRoute53Provider,
		NewResolver: newResolver,
	}
}

// Settings loads the settings file and overlays the global flags.
func (c *Context) Settings() (*config.Settings, error) {
	loader := config.NewLoader(c.Options.ConfigFile)
	s, err := loader.Load()
	if err != nil {
		return nil, err
	}
	c.Logger().Debug("settings loaded", "path", loader.Path(), "region", s.Region, "profile", s.Profile)
	s.Apply(config.Overrides{
		Region:           c.Options.Region,
		Profile:          c.Options.Profile,
		ProfilesLocation: c.Options.ProfilesLocation,
	})
	return s, nil
}

// Logger is the logger configured from the global flags, or the process
// default before flags are parsed.
func (c *Context) Logger() *logger.Logger {
	if c.log == nil {
		return logger.L()
	}
	return c.log
}

// Provider builds the DNS provider for one command run.
func (c *Context) Provider(ctx context.Context, s *config.Settings) (contract.DNSProvider, error) {
	provider, err := c.NewProvider(ctx, s)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("dns provider ready", "provider", provider.Name())
	return provider, nil
}

func newRoute53Provider(ctx context.Context, s *config.Settings) (contract.DNSProvider, error) {
	cfg, err := config.LoadAWSConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dns.NewFromConfig(cfg, dns.WithListTimeout(s.ListTimeout)), nil
}

func newResolver(s *config.Settings) contract.IPResolver {
	return network.NewResolver(
		network.WithSource(network.Source(s.PublicIP.Source)),
		network.WithEndpoint(s.PublicIP.Endpoint),
		network.WithTimeout(s.PublicIP.Timeout),
	)
}
