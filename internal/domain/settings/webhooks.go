package settings

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const DefaultWebhookBase = "https://webhook.n8nlabz.com.br/webhook"

// Endpoint é uma URL de webhook configurável.
type Endpoint struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"-"`
}

type Group struct {
	Title     string     `json:"title"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Groups segue a ordem de exibição da tela de configurações.
var Groups = []Group{
	{
		Title: "Configuração da Agenda",
		Endpoints: []Endpoint{
			{Key: "agenda", Label: "URL Base da Agenda", Path: "/agenda"},
			{Key: "agendaAdicionar", Label: "Adicionar Evento", Path: "/agenda/adicionar"},
			{Key: "agendaAlterar", Label: "Alterar Evento", Path: "/agenda/alterar"},
			{Key: "agendaExcluir", Label: "Excluir Evento", Path: "/agenda/excluir"},
		},
	},
	{
		Title: "Configuração do Bot",
		Endpoints: []Endpoint{
			{Key: "mensagem", Label: "Enviar Mensagem", Path: "/envia_mensagem"},
			{Key: "pausaBot", Label: "Pausar Bot", Path: "/pausa_bot"},
			{Key: "iniciaBot", Label: "Iniciar Bot", Path: "/inicia_bot"},
			{Key: "confirma", Label: "Confirmar", Path: "/confirma"},
		},
	},
	{
		Title: "Configuração RAG",
		Endpoints: []Endpoint{
			{Key: "enviaRag", Label: "Enviar RAG", Path: "/envia_rag"},
			{Key: "excluirArquivoRag", Label: "Excluir Arquivo RAG", Path: "/excluir-arquivo-rag"},
			{Key: "excluirRag", Label: "Excluir RAG", Path: "/excluir-rag"},
		},
	},
	{
		Title: "Configuração Evolution",
		Endpoints: []Endpoint{
			{Key: "instanciaEvolution", Label: "Instância Evolution", Path: "/instanciaevolution"},
			{Key: "atualizarQrCode", Label: "Atualizar QR Code", Path: "/atualizar-qr-code"},
		},
	},
}

// Webhooks mapeia a chave do endpoint para a URL.
type Webhooks map[string]string

// Defaults devolve todas as URLs padrão.
func Defaults() Webhooks {
	out := make(Webhooks)
	for _, g := range Groups {
		for _, e := range g.Endpoints {
			out[e.Key] = DefaultWebhookBase + e.Path
		}
	}
	return out
}

func IsKnownKey(key string) bool {
	for _, g := range Groups {
		for _, e := range g.Endpoints {
			if e.Key == key {
				return true
			}
		}
	}
	return false
}

// Merge aplica os valores salvos sobre os padrões. Chaves desconhecidas
// (de versões antigas) são ignoradas.
func Merge(saved Webhooks) Webhooks {
	out := Defaults()
	for k, v := range saved {
		if IsKnownKey(k) && strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// ======================================================
// VALIDATION
// ======================================================

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Code)
	}
	return fmt.Sprintf("invalid webhooks (%s)", strings.Join(parts, ", "))
}

func (e *ValidationError) Has(field, code string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Code == code {
			return true
		}
	}
	return false
}

// Validate aceita só chaves conhecidas com URL http/https absoluta.
func Validate(w Webhooks) error {
	verr := &ValidationError{}

	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !IsKnownKey(k) {
			verr.Fields = append(verr.Fields, FieldError{
				Field: k, Code: "unknown_endpoint", Message: "Endpoint desconhecido.",
			})
			continue
		}
		if !isWebhookURL(w[k]) {
			verr.Fields = append(verr.Fields, FieldError{
				Field: k, Code: "invalid_url", Message: "Informe uma URL http(s) válida.",
			})
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

var validate = validator.New()

func isWebhookURL(raw string) bool {
	return validate.Var(strings.TrimSpace(raw), "required,http_url") == nil
}

// ======================================================
// REPOSITORY
// ======================================================

type Repository interface {
	LoadWebhooks(ctx context.Context, userID uint) (Webhooks, error)
	SaveWebhooks(ctx context.Context, userID uint, w Webhooks) error
}
