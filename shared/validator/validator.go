package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"hms/shared/constant"
	"hms/shared/date"
	"hms/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enum is satisfied by the closed domain enumerations (room type, meal plan,
// payment status, payment method).
type enum interface {
	Valid() bool
}

func registerEnumValidation(field val.FieldLevel) bool {
	if e, ok := field.Field().Interface().(enum); ok {
		return e.Valid()
	}

	return false
}

func registerDateValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := date.Parse(str)

	return err == nil
}

func registerClockValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if str == "" {
		return true
	}

	_, err := time.Parse(constant.ClockFormat, str)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("enum", registerEnumValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("datestr", registerDateValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("clock", registerClockValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
