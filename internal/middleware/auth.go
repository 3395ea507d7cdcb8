package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextSessionID = "sessionID"
	ContextUserRole  = "userRole"
)

// SignToken emite o JWT de uma sessão de navegador. sid identifica a sessão
// de agendamento; cada login gera um novo.
func SignToken(secret string, ttl time.Duration, userID uint, role, sessionID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"sid":  sessionID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Autenticação necessária.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Sessão expirada ou inválida.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Sessão expirada ou inválida.")
			c.Abort()
			return
		}

		userID, ok1 := claims["sub"].(float64)
		sessionID, ok2 := claims["sid"].(string)
		role, _ := claims["role"].(string)
		if !ok1 || !ok2 || sessionID == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Sessão expirada ou inválida.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextSessionID, sessionID)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}
