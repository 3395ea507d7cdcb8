package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func WriteWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string, details any) {
	WriteWithDetails(c, http.StatusUnprocessableEntity, code, message, details)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Business traduz um BusinessError conhecido no status HTTP correspondente.
// Retorna false quando err não é de negócio, deixando o tratamento ao chamador.
func Business(c *gin.Context, err error) bool {
	switch Code(err) {
	case CodeAppointmentNotFound:
		NotFound(c, CodeAppointmentNotFound, "Agendamento não encontrado.")
	case CodeDialogAlreadyOpen:
		Conflict(c, CodeDialogAlreadyOpen, "Já existe uma janela de agendamento aberta.")
	case CodeNoActiveDialog:
		Conflict(c, CodeNoActiveDialog, "Nenhuma janela de agendamento aberta para esta ação.")
	case CodeNotRenaming:
		Conflict(c, CodeNotRenaming, "Nenhuma aba está sendo renomeada.")
	case CodeInvalidCategory:
		BadRequest(c, CodeInvalidCategory, "Categoria inválida.")
	case CodeInvalidCredentials:
		Unauthorized(c, CodeInvalidCredentials, "Email ou senha inválidos.")
	default:
		return false
	}
	return true
}
