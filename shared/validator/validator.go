package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"todos/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// An empty body decodes to the zero value, and a field of the wrong JSON type is left at its
// zero value, so both surface as validation errors ("Text is required") rather than decode errors.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if r != nil {
		decoder := json.NewDecoder(r)

		if err := decoder.Decode(data); err != nil && !tolerated(err) {
			return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
		}
	}

	return ValidateStruct(data)
}

func tolerated(err error) bool {
	var typeErr *json.UnmarshalTypeError

	return errors.Is(err, io.EOF) || errors.As(err, &typeErr)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
