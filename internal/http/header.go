package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID = "x-request-id"
	headerSiteID    = "x-site-id"
	headerUserID    = "x-user-id"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func siteID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerSiteID))
}

// userID is the owner identity resolved by the upstream auth layer.
func userID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerUserID))
}
