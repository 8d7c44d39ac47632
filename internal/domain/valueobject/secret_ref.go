package valueobject

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lite-lake/infra-r53/internal/domain"
)

// SecretRef is a credential given either inline or as the name of an
// environment variable. In yaml it is a plain scalar or {env: NAME}.
type SecretRef struct {
	Plain string `yaml:"plain,omitempty"`
	Env   string `yaml:"env,omitempty"`
}

func NewSecretRefPlain(value string) *SecretRef {
	return &SecretRef{Plain: value}
}

func NewSecretRefEnv(name string) *SecretRef {
	return &SecretRef{Env: name}
}

func (s *SecretRef) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var plain string
	if err := unmarshal(&plain); err == nil {
		s.Plain = plain
		return nil
	}

	type alias SecretRef
	var ref alias
	if err := unmarshal(&ref); err != nil {
		return err
	}
	s.Plain = ref.Plain
	s.Env = ref.Env
	return nil
}

func (s SecretRef) LogValue() slog.Value {
	if s.IsZero() {
		return slog.StringValue("")
	}
	return slog.StringValue("***")
}

func (s SecretRef) IsZero() bool {
	return s.Plain == "" && s.Env == ""
}

// Resolve returns the secret value. An env reference to an unset variable is
// an error; an empty reference resolves to "".
func (s SecretRef) Resolve() (string, error) {
	return s.ResolveWith(os.LookupEnv)
}

func (s SecretRef) ResolveWith(lookup func(string) (string, bool)) (string, error) {
	if s.Env != "" {
		val, ok := lookup(s.Env)
		if !ok || val == "" {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingEnv, s.Env)
		}
		return val, nil
	}
	return s.Plain, nil
}
