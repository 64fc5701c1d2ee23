package http

import (
	"fmt"

	"behavior-analytics/internal/shared/svcerrors"
)

// HTTP parameter errors
const (
	codeInvalidLimitParam = "API_1000"
)

func errInvalidLimitParam(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLimitParam, fmt.Sprintf("invalid limit parameter: %q", raw), cause)
}
