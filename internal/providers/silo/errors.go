package silo

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure classes the provider can report. Callers
// match these with errors.Is; the wrapped message carries the detail.
var (
	// ErrConnectionFailed wraps transport-level failures (DNS, connection
	// refused, timeout) from the HTTP layer.
	ErrConnectionFailed = errors.New("connection to the weather server failed")

	// ErrInvalidDates means the server rejected the start/finish dates.
	ErrInvalidDates = errors.New("server rejected the requested dates")

	// ErrInvalidCoordinates means the server rejected the latitude/longitude.
	ErrInvalidCoordinates = errors.New("server rejected the requested coordinates")

	// ErrInvalidStation means the server rejected the station number.
	ErrInvalidStation = errors.New("server rejected the requested station number")

	// ErrServerFailure covers everything else the server reports: generic
	// errors, rejected requests, missing parameters, unexpected statuses.
	ErrServerFailure = errors.New("weather server failed or is inaccessible")
)

// errorSignature pairs a marker phrase from a provider error page with the
// failure it reports.
type errorSignature struct {
	marker string
	err    error
}

// Error-page markers the provider is known to emit. Order matters: a real
// page can contain more than one phrase, and the first match decides the
// classification.
var errorSignatures = []errorSignature{
	{marker: "Invalid start or finish date", err: ErrInvalidDates},
	{marker: "Invalid latitude or longitude", err: ErrInvalidCoordinates},
	{marker: "Invalid station number", err: ErrInvalidStation},
	{marker: "Unknown error occurred", err: ErrServerFailure},
	{marker: "Request Rejected", err: ErrServerFailure},
	{marker: "must supply", err: ErrServerFailure},
}

// classify checks a raw response body against the known provider error
// signatures in priority order. It returns nil when the body looks like
// data.
func classify(body string) error {
	for _, sig := range errorSignatures {
		if strings.Contains(body, sig.marker) {
			return fmt.Errorf("%w: %s", sig.err, sig.marker)
		}
	}
	return nil
}

// snippet trims a response body down to something fit for an error message.
func snippet(body string) string {
	body = strings.TrimSpace(body)
	if len(body) > 160 {
		return body[:160] + "..."
	}
	return body
}
