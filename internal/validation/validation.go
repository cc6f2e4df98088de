// Package validation concentra las reglas de formulario del back-office.
// Las mismas reglas sirven al CLI y a la fachada de clientes, que valida antes de tocar la red.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const mb = 1 << 20

// Topes de tamaño de imagen por recurso.
const (
	MaxImagenConcurso  = 5 * mb
	MaxImagenPromocion = 5 * mb
	MaxImagenNovedad   = 10 * mb
	MaxImagenSponsor   = 10 * mb
	MaxImagenPagina    = 40 * mb
)

var horaRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// FieldError describe una regla incumplida.
type FieldError struct {
	Campo   string `json:"campo" yaml:"campo"`
	Regla   string `json:"regla" yaml:"regla"`
	Mensaje string `json:"mensaje" yaml:"mensaje"`
}

// Errors agrupa todas las reglas incumplidas de un formulario.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Mensaje)
	}
	return strings.Join(msgs, "; ")
}

// Has indica si el campo tiene al menos un error.
func (e Errors) Has(campo string) bool {
	for _, fe := range e {
		if fe.Campo == campo {
			return true
		}
	}
	return false
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = newValidator()
	})
	return instance
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores se reportan con el nombre de campo del contrato.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "yaml"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("password", passwordValida)
	_ = v.RegisterValidation("hora", func(fl validator.FieldLevel) bool {
		return horaRegex.MatchString(fl.Field().String())
	})

	registrarReglasDeFormulario(v)
	return v
}

// Validate aplica las reglas del formulario. Devuelve Errors o nil.
func Validate(dto any) error {
	if dto == nil {
		return errors.New("formulario vacío")
	}
	err := get().Struct(dto)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Campo:   fe.Field(),
			Regla:   fe.Tag(),
			Mensaje: mensaje(fe),
		})
	}
	return out
}

// passwordValida exige al menos 8 caracteres con mayúscula, dígito y carácter especial.
func passwordValida(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len([]rune(pw)) < 8 {
		return false
	}
	var mayus, digito, especial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			mayus = true
		case unicode.IsDigit(r):
			digito = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			especial = true
		}
	}
	return mayus && digito && especial
}

func mensaje(fe validator.FieldError) string {
	campo := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", campo)
	case "max":
		return fmt.Sprintf("%s admite como máximo %s caracteres", campo, fe.Param())
	case "email":
		return fmt.Sprintf("%s debe ser un correo válido", campo)
	case "url":
		return fmt.Sprintf("%s debe ser una URL válida", campo)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", campo, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", campo, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "las contraseñas no coinciden"
	case "password":
		return fmt.Sprintf("%s debe tener al menos 8 caracteres, una mayúscula, un número y un carácter especial", campo)
	case "hora":
		return fmt.Sprintf("%s debe tener formato HH:mm", campo)
	case "fechafin":
		return fmt.Sprintf("%s no puede ser anterior a la fecha de inicio", campo)
	case "imagen":
		return "la imagen es obligatoria"
	case "tamano":
		return fmt.Sprintf("%s supera el tamaño máximo de %s MB", campo, fe.Param())
	case "maximagenes":
		return fmt.Sprintf("se permiten como máximo %s imágenes", fe.Param())
	default:
		return fmt.Sprintf("%s no es válido (%s)", campo, fe.Tag())
	}
}
