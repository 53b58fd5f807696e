package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate
	clockRe  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Enum is implemented by closed string enumerations validated with the "enum" tag.
type Enum interface {
	IsValid() bool
}

func registerDayValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == "" {
		return true
	}

	_, err := time.Parse(constant.DayFormat, value)

	return err == nil
}

func registerClockValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == "" {
		return true
	}

	return clockRe.MatchString(value)
}

func registerEnumValidation(field val.FieldLevel) bool {
	if field.Field().IsZero() {
		return true
	}

	enum, ok := field.Field().Interface().(Enum)
	if !ok {
		return false
	}

	return enum.IsValid()
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	for tag, fn := range map[string]val.Func{
		"day":   registerDayValidation,
		"clock": registerClockValidation,
		"enum":  registerEnumValidation,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
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
