package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó validación.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct valida los tags `validate:` de un struct y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Message arma un mensaje legible con el primer error de validación.
func Message(errs []FieldError) string {
	if len(errs) == 0 {
		return ""
	}
	first := errs[0]
	msg := fmt.Sprintf("campo '%s' no cumple la regla '%s'", strings.ToLower(first.Field), first.Tag)
	if first.Param != "" {
		msg += "=" + first.Param
	}
	return msg
}
