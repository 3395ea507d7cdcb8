package appointment

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/validators"
)

const (
	FieldOwnerName = "ownerName"
	FieldPhone     = "phone"
	FieldDate      = "date"
	FieldService   = "service"
	FieldStatus    = "status"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError agrupa todos os campos inválidos de um rascunho.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Code)
	}
	return fmt.Sprintf("validation failed (%s)", strings.Join(parts, ", "))
}

// Has informa se field falhou com code.
func (e *ValidationError) Has(field, code string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Code == code {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, code, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: msg})
}

// Validate confere o rascunho antes de qualquer gravação.
func Validate(c Category, d FormData) error {
	verr := &ValidationError{}

	if strings.TrimSpace(d.OwnerName) == "" {
		verr.add(FieldOwnerName, "required", "Nome do cliente é obrigatório.")
	}

	switch {
	case strings.TrimSpace(d.Phone) == "":
		verr.add(FieldPhone, "required", "Telefone é obrigatório.")
	case !validators.IsPhoneValid(d.Phone):
		verr.add(FieldPhone, "invalid_phone", "Telefone inválido.")
	}

	if d.Date.IsZero() {
		verr.add(FieldDate, "invalid_date", "Data e hora inválidas.")
	}

	if !c.AcceptsService(d.Service) {
		verr.add(FieldService, "invalid_service", "Serviço inválido para esta categoria.")
	}

	if !d.Status.IsValid() {
		verr.add(FieldStatus, "invalid_status", "Status inválido.")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
