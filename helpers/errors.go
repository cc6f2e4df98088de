package helpers

import (
	"errors"
	"net/http"
)

// ErrorKind clasifica los fallos que el cliente reporta a sus consumidores.
type ErrorKind int

const (
	// KindHTTP corresponde a respuestas fuera del rango 2xx.
	KindHTTP ErrorKind = iota + 1
	// KindDomain corresponde a respuestas 2xx que el backend marca como rechazadas.
	KindDomain
	// KindValidation corresponde a validaciones locales; nunca llega a la red.
	KindValidation
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Body    string
	Err     error
}

// Error devuelve el mensaje funcional tal como lo entregó el backend.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError construye el error para un status fuera de 2xx.
func NewHTTPError(status int, message, body string) *AppError {
	return &AppError{Kind: KindHTTP, Status: status, Message: message, Body: body}
}

// NewDomainError construye el error para una respuesta 2xx rechazada por reglas de negocio.
func NewDomainError(status int, message, body string) *AppError {
	return &AppError{Kind: KindDomain, Status: status, Message: message, Body: body}
}

// NewValidationError envuelve errores de validación local.
func NewValidationError(err error) *AppError {
	return &AppError{Kind: KindValidation, Status: http.StatusBadRequest, Message: err.Error(), Err: err}
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == KindHTTP && appErr.Status == status
	}
	return false
}

// IsDomainError indica si el backend respondió 2xx pero rechazó la operación.
func IsDomainError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindDomain
}

// IsValidationError indica si el error se produjo antes de llamar al backend.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindValidation
}
