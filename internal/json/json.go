// Package json contains utilities for handling JSON.
package json

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

var ErrTrailingData = errors.New("unexpected data after JSON object")

// DecodeJSON decodes a single JSON object from r, rejecting unknown fields
// and anything after the object.
func DecodeJSON(dst any, r io.Reader) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	// Ensure no extra tokens after decoding
	if _, err := decoder.Token(); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}

// EncodeJSON writes v as the response body with the given status.
func EncodeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
