package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/lite-lake/infra-r53/internal/domain"
	"github.com/lite-lake/infra-r53/internal/infrastructure/logger"
)

type keyPair struct {
	id, secret, token string
}

func (c Credentials) resolve() (keyPair, error) {
	var kp keyPair
	var err error
	if kp.id, err = c.AccessKeyID.Resolve(); err != nil {
		return kp, fmt.Errorf("credentials.access_key_id: %w", err)
	}
	if kp.secret, err = c.SecretAccessKey.Resolve(); err != nil {
		return kp, fmt.Errorf("credentials.secret_access_key: %w", err)
	}
	if kp.id == "" || kp.secret == "" {
		return kp, fmt.Errorf("%w: access_key_id and secret_access_key must both be set", domain.ErrMissingCredentials)
	}
	if !c.SessionToken.IsZero() {
		if kp.token, err = c.SessionToken.Resolve(); err != nil {
			return kp, fmt.Errorf("credentials.session_token: %w", err)
		}
	}
	return kp, nil
}

// LoadAWSConfig builds the SDK configuration and retrieves credentials once,
// so a bad profile fails before any Route 53 call. Retries are disabled.
func LoadAWSConfig(ctx context.Context, s *Settings, extra ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s.Region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if s.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(s.Profile))
	}
	if s.ProfilesLocation != "" {
		opts = append(opts, awsconfig.WithSharedCredentialsFiles([]string{s.ProfilesLocation}))
	}
	if !s.Credentials.IsZero() {
		kp, err := s.Credentials.resolve()
		if err != nil {
			return aws.Config{}, err
		}
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(kp.id, kp.secret, kp.token),
		))
	}
	opts = append(opts, extra...)

	log := logger.FromContext(ctx)
	log.Debug("loading aws config",
		"region", s.Region,
		"profile", s.Profile,
		"profiles_location", s.ProfilesLocation,
		"access_key_id", s.Credentials.AccessKeyID,
	)

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%w: %w", domain.ErrMissingCredentials, err)
	}
	if cfg.Credentials == nil {
		return aws.Config{}, domain.ErrMissingCredentials
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%w: %w", domain.ErrMissingCredentials, err)
	}
	log.Debug("aws credentials loaded", "source", creds.Source)
	return cfg, nil
}
