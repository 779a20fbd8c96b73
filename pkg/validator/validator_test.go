package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/stockmaster-api/pkg/validator"
)

type cuerpoDePrueba struct {
	Nombre string `validate:"required,min=2"`
	Email  string `validate:"required,email"`
	Estado string `validate:"omitempty,oneof=Draft Completed"`
}

func TestValidateStruct_StructValido_RetornaNil(t *testing.T) {
	errs := validator.ValidateStruct(cuerpoDePrueba{Nombre: "Ana", Email: "ana@acme.com"})
	assert.Nil(t, errs)
}

func TestValidateStruct_CamposFaltantes_ReportaCadaUno(t *testing.T) {
	errs := validator.ValidateStruct(cuerpoDePrueba{})
	require.Len(t, errs, 2)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "required", errs[1].Tag)
}

func TestValidateStruct_OneofInvalido(t *testing.T) {
	errs := validator.ValidateStruct(cuerpoDePrueba{Nombre: "Ana", Email: "ana@acme.com", Estado: "Pendiente"})
	require.Len(t, errs, 1)
	assert.Equal(t, "oneof", errs[0].Tag)
	assert.Contains(t, errs[0].Field, "Estado")
}

func TestMessage_IncluyeCampoReglaYParametro(t *testing.T) {
	errs := validator.ValidateStruct(cuerpoDePrueba{Nombre: "A", Email: "ana@acme.com"})
	require.Len(t, errs, 1)

	msg := validator.Message(errs)
	assert.Contains(t, msg, "min=2")
}

func TestMessage_SinErrores_RetornaVacio(t *testing.T) {
	assert.Empty(t, validator.Message(nil))
}
