package constants

import "time"

const AppName = "r53"

const (
	// DefaultRecordTTL applies to records that do not exist yet: one day.
	DefaultRecordTTL int64 = 86400

	DefaultRegion = "us-east-1"

	DefaultListTimeout     = 60 * time.Second
	DefaultChangePollDelay = 5 * time.Second
	DefaultChangeMaxWait   = 5 * time.Minute

	DefaultPublicIPEndpoint = "https://checkip.amazonaws.com"
	DefaultPublicIPTimeout  = 10 * time.Second
)

const (
	EnvDebug      = "R53_DEBUG"
	EnvLogFormat  = "R53_LOG_FORMAT"
	EnvConfigFile = "R53_CONFIG"
)

const FilePermissionOwnerRW = 0o600
