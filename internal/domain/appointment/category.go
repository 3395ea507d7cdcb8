package appointment

import (
	"strings"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
)

// ===============================
// Appointment Category
// ===============================

type Category string

const (
	CategoryVet   Category = "VET"
	CategoryBanho Category = "BANHO"
)

// Categories lista as duas abas na ordem de exibição.
var Categories = []Category{CategoryVet, CategoryBanho}

var serviceOptions = map[Category][]string{
	CategoryVet:   {"CALL", "Vacinação", "Exames de Rotina"},
	CategoryBanho: {"Banho e Tosa", "Banho", "Tosa"},
}

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryVet:
		return CategoryVet, nil
	case CategoryBanho:
		return CategoryBanho, nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidCategory)
}

func (c Category) IsValid() bool {
	_, ok := serviceOptions[c]
	return ok
}

// ServiceOptions devolve uma cópia dos serviços aceitos pela categoria.
func (c Category) ServiceOptions() []string {
	opts := serviceOptions[c]
	out := make([]string, len(opts))
	copy(out, opts)
	return out
}

func (c Category) AcceptsService(service string) bool {
	for _, s := range serviceOptions[c] {
		if s == service {
			return true
		}
	}
	return false
}

func (c Category) DefaultService() string {
	if c == CategoryVet {
		return "CALL"
	}
	return "Banho"
}

func (c Category) DefaultLabel() string {
	if c == CategoryVet {
		return "Veterinário"
	}
	return "Banho"
}

// ShortName é o nome usado no título e na mensagem de lista vazia.
func (c Category) ShortName() string {
	if c == CategoryVet {
		return "CALL"
	}
	return "Banho"
}
