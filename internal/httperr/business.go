package httperr

import "errors"

// Codes shared between the domain and the HTTP layer.
const (
	CodeAppointmentNotFound = "appointment_not_found"
	CodeDialogAlreadyOpen   = "dialog_already_open"
	CodeNoActiveDialog      = "no_active_dialog"
	CodeInvalidCategory     = "invalid_category"
	CodeValidationFailed    = "validation_failed"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeNotRenaming         = "not_renaming"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Code devolve o código de negócio de err, ou "" se não houver.
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
