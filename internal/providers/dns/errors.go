package dns

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"

	"github.com/lite-lake/infra-r53/internal/domain"
)

// translateError maps SDK failures onto the domain error classes. The
// provider's own code and message are kept so they reach the user verbatim.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}

	var noZone *types.NoSuchHostedZone
	if errors.As(err, &noZone) {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrZoneNotFound, noZone.ErrorMessage())
	}

	opErr := &domain.OpError{Op: op, Cause: err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		opErr.Code = apiErr.ErrorCode()
		opErr.Message = apiErr.ErrorMessage()
	}
	return opErr
}
