package utils

import (
	"encoding/json"
	"fmt"
)

// ParseTradierResponse unwraps Tradier's {"outer": {"field": ...}} envelope.
// Tradier encodes a single element as an object and several as an array, and
// an empty result as null or "null"; all three come back as a slice.
func ParseTradierResponse[T any](response []byte, field string) ([]T, error) {
	header := make(map[string]json.RawMessage)

	if err := json.Unmarshal(response, &header); err != nil {
		return nil, fmt.Errorf("ParseTradierResponse(): failed to unmarshal header in response: %w", err)
	}

	if len(header) != 1 {
		return nil, fmt.Errorf("ParseTradierResponse(): expected 1 key in header, got %v", len(header))
	}

	var v json.RawMessage
	for _, value := range header {
		v = value
	}

	if isTradierNull(v) {
		return []T{}, nil
	}

	data := make(map[string]json.RawMessage)
	if err := json.Unmarshal(v, &data); err != nil {
		return nil, fmt.Errorf("ParseTradierResponse(): failed to unmarshal data in response: %w", err)
	}

	raw, found := data[field]
	if !found || isTradierNull(raw) {
		return []T{}, nil
	}

	var dtos []T

	var singleDTO T
	if err := json.Unmarshal(raw, &singleDTO); err == nil {
		dtos = append(dtos, singleDTO)
	} else {
		if err := json.Unmarshal(raw, &dtos); err != nil {
			return nil, fmt.Errorf("ParseTradierResponse(): failed to unmarshal %s in response: %w", field, err)
		}
	}

	return dtos, nil
}

// HasTradierField reports whether the envelope's inner object carries field,
// e.g. "unmatched_symbols" on a quotes response.
func HasTradierField(response []byte, field string) bool {
	header := make(map[string]json.RawMessage)
	if err := json.Unmarshal(response, &header); err != nil {
		return false
	}

	for _, v := range header {
		data := make(map[string]json.RawMessage)
		if err := json.Unmarshal(v, &data); err != nil {
			continue
		}

		if raw, found := data[field]; found && !isTradierNull(raw) {
			return true
		}
	}

	return false
}

func isTradierNull(raw json.RawMessage) bool {
	s := string(raw)
	return s == "" || s == "null" || s == "\"null\""
}
