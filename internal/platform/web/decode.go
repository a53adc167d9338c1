package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// TypeMismatchError reports a JSON value whose type does not fit the target field.
type TypeMismatchError struct {
	Field    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %s must be of type %s", e.Field, e.Expected)
}

var (
	// ErrTrailingData is returned when the body holds more than one JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON object")
	// ErrNotAnObject is returned when the body is valid JSON but not an object.
	ErrNotAnObject = errors.New("request body must be a JSON object")
)

// DecodeJSON decodes the request body into dst. An empty body is not an error and leaves dst untouched.
// A field of the wrong JSON type is reported as *TypeMismatchError.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return err
		}
		if typeErr.Field == "" {
			return ErrNotAnObject
		}
		return &TypeMismatchError{Field: typeErr.Field, Expected: typeErr.Type.String()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
