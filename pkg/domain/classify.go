package domain

import (
	"errors"
	"net/http"
	"strings"
)

// ErrorKind is the classification of a failure as seen by the routing layer.
type ErrorKind int

const (
	KindInternalError ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// Classify maps a failure to an ErrorKind. When the error carries a
// structured upstream status code it is used directly; otherwise the legacy
// substring matching over the failure message applies. Unrecognized
// failures classify as KindInternalError.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindInternalError
	}

	var ue *UpstreamError
	if errors.As(err, &ue) && ue.StatusCode != 0 {
		switch ue.StatusCode {
		case http.StatusBadRequest:
			return KindBadRequest
		case http.StatusUnauthorized:
			return KindUnauthorized
		case http.StatusForbidden:
			return KindForbidden
		case http.StatusNotFound:
			return KindNotFound
		default:
			return KindInternalError
		}
	}

	if errors.Is(err, ErrRecordNotFound) {
		return KindNotFound
	}

	// Legacy fallback: the upstream wording is fragile and misclassified
	// messages default to KindInternalError.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "401 Unauthorized"):
		return KindUnauthorized
	case strings.Contains(msg, "403 Forbidden"):
		return KindForbidden
	case strings.Contains(msg, "400 Bad Request"):
		return KindBadRequest
	case strings.Contains(msg, "404 Not Found"):
		return KindNotFound
	default:
		return KindInternalError
	}
}
