package aggregators

import (
	"fmt"

	"behavior-analytics/internal/shared/svcerrors"
)

// Query service errors
const (
	codeMissingSiteID       = "QRY_1000"
	codeSiteNotFound        = "QRY_1001"
	codeInvalidStatusFilter = "QRY_1002"
	codeSessionNotFound     = "QRY_1003"

	codeInternalStoreFailed = "QRY_9000"
)

func errMissingSiteID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingSiteID, "site_id query parameter is required", nil)
}

func errSiteNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSiteNotFound, "website not found", cause)
}

func errInvalidStatusFilter(status string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidStatusFilter, fmt.Sprintf("invalid status filter: %q", status), nil)
}

func errSessionNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSessionNotFound, "session not found", cause)
}

func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("queryStoreFailed: %w", cause))
}
