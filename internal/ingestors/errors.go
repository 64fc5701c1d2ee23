package ingestors

import (
	"fmt"

	"behavior-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeMissingSiteID    = "ING_1000"
	codeValidationFailed = "ING_1001"
	codeSiteNotFound     = "ING_1002"

	codeInternalSiteLookupFailed    = "ING_9000"
	codeInternalSessionLookupFailed = "ING_9001"
	codeInternalBatchWriteFailed    = "ING_9002"
)

// errMissingSiteID returns an error when no tenant identifier was supplied.
func errMissingSiteID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingSiteID, "site_id is required: pass the X-Site-ID header or include it in the payload", nil)
}

// errValidationFailed returns an error for malformed payloads.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errSiteNotFound returns an error when the tenant is unknown or deleted.
func errSiteNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSiteNotFound, "invalid site_id", cause)
}

// errInternalSiteLookupFailed returns an error when tenant resolution fails.
func errInternalSiteLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSiteLookupFailed, fmt.Errorf("siteLookupFailed: %w", cause))
}

// errInternalSessionLookupFailed returns an error when the session point lookup fails.
func errInternalSessionLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSessionLookupFailed, fmt.Errorf("sessionLookupFailed: %w", cause))
}

// errInternalBatchWriteFailed returns an error when the grouped batch write fails.
func errInternalBatchWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchWriteFailed, fmt.Errorf("batchWriteFailed: %w", cause))
}
