package contract

import "context"

type IPResolver interface {
	PublicIP(ctx context.Context) (string, error)
	// LocalIP returns "" without error when no suitable address exists.
	LocalIP(ctx context.Context) (string, error)
}
