package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"equipmentCentral/pkg/e"
	"equipmentCentral/pkg/validator"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object from the request body into dst and
// validates it. Unknown fields and trailing data are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", e.ErrInvalidInput)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", e.ErrInvalidInput, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", e.ErrInvalidInput)
	}

	if err := validator.ValidateStruct(dst); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidInput, err)
	}
	return nil
}
