package fabrick

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

var nullLiteral = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), nullLiteral)
}

// payloadNode extracts the raw payload node from an upstream response body.
// A body that does not parse, or parses without a payload key, is invalid
// input; the raw body is never treated as the value itself.
func payloadNode(body []byte) (json.RawMessage, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	raw, ok := root["payload"]
	if !ok {
		return nil, fmt.Errorf("%w: missing payload node", domain.ErrInvalidPayload)
	}
	return raw, nil
}

// DecodePayload unwraps {"payload": <T>} into T. A payload node present but
// null means the upstream reported no value; that is absence (nil, nil),
// not an error.
func DecodePayload[T any](body []byte) (*T, error) {
	raw, err := payloadNode(body)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return &v, nil
}

// DecodePayloadList unwraps {"payload": {"list": [<T>]}} into []T. An empty
// list is a valid empty result and decodes to a non-nil empty slice. A null
// payload decodes to a nil slice, meaning absence.
func DecodePayloadList[T any](body []byte) ([]T, error) {
	raw, err := payloadNode(body)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	list, ok := inner["list"]
	if !ok {
		return nil, fmt.Errorf("%w: missing payload.list node", domain.ErrInvalidPayload)
	}
	if isNull(list) {
		return nil, nil
	}
	out := make([]T, 0)
	if err := json.Unmarshal(list, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return out, nil
}

// EncodeBody serializes an outgoing request body to JSON.
func EncodeBody(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return b, nil
}
