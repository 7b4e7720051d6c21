// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import (
	"errors"
	"fmt"
)

// Kind classifies a lookup failure. The set is closed: every error returned by
// this package carries exactly one of these kinds.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindMissingConfig
	KindNotFound
	KindRemoteAPI
	KindTransport
	KindParse
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindMissingConfig:
		return "MissingConfig"
	case KindNotFound:
		return "NotFoundError"
	case KindRemoteAPI:
		return "RemoteAPIError"
	case KindTransport:
		return "TransportError"
	case KindParse:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// Operations recorded on Error.Op.
const (
	OpQuery   = "query"
	OpConfig  = "config"
	OpSearch  = "search"
	OpDetails = "details"
)

// Error is the error type returned by every stage of the lookup pipeline.
type Error struct {
	Kind Kind

	// Op names the stage that failed: query, config, search, or details.
	Op string

	// Status is the provider status for KindRemoteAPI (e.g. "REQUEST_DENIED").
	Status string

	// Query is the search string that produced no candidates (KindNotFound
	// from the search stage).
	Query string

	// Msg is a human-readable description.
	Msg string

	// Err is the underlying cause for KindTransport and KindParse.
	Err error
}

func (e *Error) Error() string {
	var s string
	switch {
	case e.Kind == KindRemoteAPI:
		s = fmt.Sprintf("places %s: provider status %s", e.Op, e.Status)
		if e.Msg != "" {
			s += ": " + e.Msg
		}
	case e.Msg != "":
		s = fmt.Sprintf("places %s: %s", e.Op, e.Msg)
	default:
		s = fmt.Sprintf("places %s: %s", e.Op, e.Kind)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// works regardless of Op, Status, or Query.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
	ErrMissingConfig = &Error{Kind: KindMissingConfig}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrRemoteAPI     = &Error{Kind: KindRemoteAPI}
	ErrTransport     = &Error{Kind: KindTransport}
	ErrParse         = &Error{Kind: KindParse}
)

// KindOf returns the classification of err, or KindUnknown when err did not
// come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
