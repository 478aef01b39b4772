package dto

import "github.com/snti-mx/snti-api/pkg/validate"

// Response es el sobre uniforme de todas las respuestas HTTP:
// {success, message?, data?, errors?}.
type Response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Data    interface{}          `json:"data,omitempty"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

// OK construye un sobre exitoso.
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail construye un sobre de error con mensaje.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// FailValidation construye el sobre de error de validación con la lista de campos.
func FailValidation(errores []validate.FieldError) Response {
	return Response{Success: false, Message: "Error de validación", Errors: errores}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y topes.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
