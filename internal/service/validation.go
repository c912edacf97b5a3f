package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"waste-management-api-server/internal/apperr"
)

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateInput(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.InvalidInput(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" must not be null")
		default:
			msgs = append(msgs, fe.Field()+" failed "+fe.Tag()+" check")
		}
	}
	return apperr.InvalidInput(strings.Join(msgs, ", "))
}

// requireText rejects empty or whitespace-only values.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.InvalidInput(field + " must not be empty")
	}
	return nil
}
