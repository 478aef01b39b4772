package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError es un error de validación a nivel de campo, en el orden en que
// se declararon las reglas.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

var (
	// CURP: 4 letras, fecha AAMMDD, sexo H/M, 5 consonantes, homoclave y dígito.
	curpRegex = regexp.MustCompile(`^[A-Z]{4}\d{6}[HM][A-Z]{5}[0-9A-Z]\d$`)
	// RFC persona física de 13 caracteres con homoclave.
	rfcRegex = regexp.MustCompile(`^[A-Z]{4}\d{6}[0-9A-Z]{3}$`)
)

// Validator evalúa reglas declarativas por campo (tags `validate`) sobre los DTO
// de entrada y produce una lista ordenada de errores {campo, mensaje}.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con los formatos propios (curp, rfc) registrados
// y usando el tag json como nombre de campo reportado.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Los errores de registro solo ocurren con tags vacíos; aquí son constantes.
	_ = v.RegisterValidation("curp", func(fl validator.FieldLevel) bool {
		return curpRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("rfc", func(fl validator.FieldLevel) bool {
		return rfcRegex.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// Struct valida el DTO y devuelve la lista de errores de campo.
// Lista vacía (nil) significa entrada aceptada. No tiene efectos secundarios.
func (va *Validator) Struct(s interface{}) []FieldError {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Campo: "", Mensaje: "entrada inválida"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Campo: fe.Field(), Mensaje: mensaje(fe)})
	}
	return out
}

// mensaje traduce el tag fallido a un mensaje en español, al estilo de los
// withMessage del validador original.
func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", fe.Field())
	case "email":
		return "Formato de email inválido"
	case "len":
		return fmt.Sprintf("El campo %s debe tener %s caracteres", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser como mínimo %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("El campo %s debe tener como máximo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser como máximo %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Valor de %s no válido", fe.Field())
	case "curp":
		return "Formato de CURP inválido"
	case "rfc":
		return "Formato de RFC inválido"
	case "datetime":
		return "Formato de fecha inválido (YYYY-MM-DD)"
	case "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("El campo %s no es válido", fe.Field())
	}
}
