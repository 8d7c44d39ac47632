package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/infra-r53/internal/constants"
	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/domain/valueobject"
)

// Settings is read once at startup and passed down explicitly.
type Settings struct {
	Profile          string           `yaml:"profile"`
	ProfilesLocation string           `yaml:"profiles_location"`
	Region           string           `yaml:"region"`
	DefaultTTL       int64            `yaml:"default_ttl"`
	ListTimeout      time.Duration    `yaml:"list_timeout"`
	Credentials      Credentials      `yaml:"credentials"`
	PublicIP         PublicIPSettings `yaml:"public_ip"`
}

type Credentials struct {
	AccessKeyID     valueobject.SecretRef `yaml:"access_key_id"`
	SecretAccessKey valueobject.SecretRef `yaml:"secret_access_key"`
	SessionToken    valueobject.SecretRef `yaml:"session_token"`
}

// IsZero reports whether no static keys were configured, in which case the
// SDK default chain is used.
func (c Credentials) IsZero() bool {
	return c.AccessKeyID.IsZero() && c.SecretAccessKey.IsZero() && c.SessionToken.IsZero()
}

type PublicIPSettings struct {
	Source   string        `yaml:"source"`
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Overrides carries command-line flags. Empty fields leave the file value.
type Overrides struct {
	Region           string
	Profile          string
	ProfilesLocation string
}

func Defaults() *Settings {
	return &Settings{
		Region:      constants.DefaultRegion,
		DefaultTTL:  constants.DefaultRecordTTL,
		ListTimeout: constants.DefaultListTimeout,
		PublicIP: PublicIPSettings{
			Source:   "echo",
			Endpoint: constants.DefaultPublicIPEndpoint,
			Timeout:  constants.DefaultPublicIPTimeout,
		},
	}
}

// DefaultPath is $R53_CONFIG, or r53/config.yaml under the user config
// directory ($XDG_CONFIG_HOME on Linux).
func DefaultPath() string {
	if p := os.Getenv(constants.EnvConfigFile); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, constants.AppName, "config.yaml")
}

type Loader struct {
	path     string
	required bool
}

// NewLoader reads path, or DefaultPath when path is empty. A missing default
// file is not an error; a missing explicit one is.
func NewLoader(path string) *Loader {
	if path == "" {
		return &Loader{path: DefaultPath()}
	}
	return &Loader{path: path, required: true}
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load() (*Settings, error) {
	s := Defaults()
	if l.path == "" {
		return s, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !l.required {
			return s, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigReadFailed, l.path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrConfigParseFailed, l.path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return s, nil
}

// Apply overlays flags on top of the file values.
func (s *Settings) Apply(o Overrides) {
	if o.Region != "" {
		s.Region = o.Region
	}
	if o.Profile != "" {
		s.Profile = o.Profile
	}
	if o.ProfilesLocation != "" {
		s.ProfilesLocation = o.ProfilesLocation
	}
}

func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Region) == "" {
		s.Region = constants.DefaultRegion
	}
	if s.DefaultTTL < 0 {
		return fmt.Errorf("%w: default_ttl must not be negative, got %d", domain.ErrConfiguration, s.DefaultTTL)
	}
	if s.ListTimeout < 0 {
		return fmt.Errorf("%w: list_timeout must not be negative", domain.ErrConfiguration)
	}
	switch s.PublicIP.Source {
	case "", "echo", "imds":
	default:
		return fmt.Errorf("%w: public_ip.source must be echo or imds, got %q", domain.ErrConfiguration, s.PublicIP.Source)
	}
	if s.PublicIP.Timeout < 0 {
		return fmt.Errorf("%w: public_ip.timeout must not be negative", domain.ErrConfiguration)
	}
	return nil
}
