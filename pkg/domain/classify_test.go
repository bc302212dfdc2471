package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_StructuredStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"bad request", 400, KindBadRequest},
		{"unauthorized", 401, KindUnauthorized},
		{"forbidden", 403, KindForbidden},
		{"not found", 404, KindNotFound},
		{"server error", 500, KindInternalError},
		{"teapot", 418, KindInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &UpstreamError{StatusCode: tt.status, Message: "upstream said no"}
			assert.Equal(t, tt.want, Classify(err))
		})
	}
}

func TestClassify_LegacySubstringFallback(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want ErrorKind
	}{
		{"forbidden wording", "call failed with 403 Forbidden", KindForbidden},
		{"not found wording", "got 404 Not Found from upstream", KindNotFound},
		{"unauthorized wording", "401 Unauthorized", KindUnauthorized},
		{"bad request wording", "rejected: 400 Bad Request", KindBadRequest},
		{"unrecognized wording", "connection reset by peer", KindInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(errors.New(tt.msg)))
		})
	}
}

func TestClassify_TransportErrorWithoutStatusUsesMessage(t *testing.T) {
	err := &UpstreamError{Message: "proxy replied 403 Forbidden"}
	assert.Equal(t, KindForbidden, Classify(err))
}

func TestClassify_RecordNotFound(t *testing.T) {
	assert.Equal(t, KindNotFound, Classify(ErrRecordNotFound))
	assert.Equal(t, KindNotFound, Classify(fmt.Errorf("lookup: %w", ErrRecordNotFound)))
}

func TestClassify_Nil(t *testing.T) {
	assert.Equal(t, KindInternalError, Classify(nil))
}

func TestUpstreamError_MessagePreservesStatus(t *testing.T) {
	err := &UpstreamError{StatusCode: 403, Message: "403 Forbidden: access denied"}
	assert.Contains(t, err.Error(), "403 Forbidden")
}
