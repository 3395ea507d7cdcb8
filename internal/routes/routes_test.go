package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/config"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/settings"
	infraRepo "github.com/BruksfildServices01/unicapital-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/middleware"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/usecase/stats"
)

// ------------------------------
// fakes
// ------------------------------

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, infraRepo.ErrUserNotFound
}

func (f *fakeUsers) FindUserByID(_ context.Context, id uint) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, infraRepo.ErrUserNotFound
}

type fakeClients struct {
	clients []models.Client
}

func (f *fakeClients) SearchClients(context.Context, string, int) ([]models.Client, error) {
	return f.clients, nil
}

func (f *fakeClients) CountClients(context.Context) (int64, error) {
	return int64(len(f.clients)), nil
}

func (f *fakeClients) CountClientsCreatedBetween(_ context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, c := range f.clients {
		if !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeClients) ListRecentClients(context.Context, int) ([]models.Client, error) {
	return f.clients, nil
}

type memSettings struct {
	data map[uint]settings.Webhooks
}

func (m *memSettings) LoadWebhooks(_ context.Context, userID uint) (settings.Webhooks, error) {
	return m.data[userID], nil
}

func (m *memSettings) SaveWebhooks(_ context.Context, userID uint, w settings.Webhooks) error {
	if m.data[userID] == nil {
		m.data[userID] = settings.Webhooks{}
	}
	for k, v := range w {
		m.data[userID][k] = v
	}
	return nil
}

// ------------------------------
// harness
// ------------------------------

const testSecret = "routes-secret"

type harness struct {
	t        *testing.T
	router   *gin.Engine
	sessions *schedule.Registry
	token    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUsers{users: []models.User{
		{ID: 1, Name: "Admin", Email: "admin@unicapital.com", PasswordHash: string(hash), Role: "admin"},
	}}
	clients := &fakeClients{clients: []models.Client{
		{ID: 1, Name: "Maria", Phone: "11999999999", CreatedAt: time.Now()},
	}}

	cfg := &config.Config{JWTSecret: testSecret, TokenTTL: time.Hour}

	sessions := schedule.NewRegistry(schedule.RegistryOptions{Location: time.UTC})

	r := gin.New()
	RegisterRoutes(r, Dependencies{
		Config:   cfg,
		Users:    users,
		Clients:  clients,
		Stats:    stats.NewGetClientStats(clients, time.UTC, nil),
		Settings: settings.NewService(&memSettings{data: map[uint]settings.Webhooks{}}, nil),
		Sessions: sessions,
		PingDB:   func(context.Context) error { return errors.New("offline") },
	})

	return &harness{t: t, router: r, sessions: sessions}
}

func (h *harness) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	h.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func (h *harness) login() {
	h.t.Helper()

	w, body := h.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "admin@unicapital.com",
		"password": "segredo123",
	})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	h.token = body["token"].(string)
}

// sessionID lê o sid do token atual.
func (h *harness) sessionID() string {
	h.t.Helper()

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(h.token, claims)
	require.NoError(h.t, err)
	sid, _ := claims["sid"].(string)
	require.NotEmpty(h.t, sid)
	return sid
}

func noticeTitles(body map[string]any) []string {
	var out []string
	list, _ := body["notices"].([]any)
	for _, n := range list {
		out = append(out, n.(map[string]any)["title"].(string))
	}
	return out
}

// ------------------------------
// tests
// ------------------------------

func TestHealth(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(http.MethodGet, "/health/db", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLogin(t *testing.T) {
	h := newHarness(t)

	w, body := h.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "admin@unicapital.com", "password": "errada123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", body["error_code"])

	w, _ = h.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "nao-e-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = h.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	h.login()
	w, body = h.do(http.MethodGet, "/api/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Admin", body["user"].(map[string]any)["name"])
	assert.NotEmpty(t, body["sessionId"])
}

func TestAppointmentFlow(t *testing.T) {
	h := newHarness(t)
	h.login()

	w, body := h.do(http.MethodGet, "/api/me/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := body["list"].(map[string]any)
	assert.Equal(t, true, list["empty"])
	assert.Equal(t, "Nenhum agendamento encontrado para CALL", list["emptyMessage"])

	w, body = h.do(http.MethodPost, "/api/me/appointments/dialog/add", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Novo Agendamento", body["dialog"].(map[string]any)["title"])

	// segundo diálogo é recusado
	w, body = h.do(http.MethodPost, "/api/me/appointments/dialog/add", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "dialog_already_open", body["error_code"])

	// envio inválido mantém o diálogo aberto
	w, body = h.do(http.MethodPatch, "/api/me/appointments/dialog/draft", map[string]string{"date": ""})
	require.Equal(t, http.StatusOK, w.Code)
	w, body = h.do(http.MethodPost, "/api/me/appointments/dialog/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_failed", body["error_code"])
	assert.NotEmpty(t, body["details"])

	w, _ = h.do(http.MethodPatch, "/api/me/appointments/dialog/draft", map[string]string{
		"ownerName": "Maria",
		"phone":     "11999999999",
		"date":      "2024-05-01T10:00",
		"service":   "Vacinação",
		"status":    "pendente",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = h.do(http.MethodPost, "/api/me/appointments/dialog/submit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"Agendamento criado"}, noticeTitles(body))
	assert.Equal(t, "idle", body["dialog"].(map[string]any)["state"])

	items := body["list"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Maria", item["ownerName"])
	assert.Equal(t, "01/05/2024 às 10:00", item["dateLabel"])
	id := int64(item["id"].(float64))

	w, _ = h.do(http.MethodPost, "/api/me/appointments/999/edit", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = h.do(http.MethodPost, "/api/me/appointments/abc/edit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = h.do(http.MethodPost, "/api/me/appointments/"+strconv.FormatInt(id, 10)+"/delete", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Confirmar Exclusão", body["dialog"].(map[string]any)["title"])

	w, body = h.do(http.MethodPost, "/api/me/appointments/dialog/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Agendamento excluído"}, noticeTitles(body))
	assert.Equal(t, true, body["list"].(map[string]any)["empty"])

	// confirm sem diálogo não altera nada
	w, _ = h.do(http.MethodPost, "/api/me/appointments/dialog/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestScheduleTabs(t *testing.T) {
	h := newHarness(t)
	h.login()

	w, body := h.do(http.MethodPut, "/api/me/schedule/active", map[string]string{"category": "banho"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BANHO", body["schedule"].(map[string]any)["active"])

	w, _ = h.do(http.MethodPut, "/api/me/schedule/active", map[string]string{"category": "HOTEL"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = h.do(http.MethodPut, "/api/me/schedule/tabs/BANHO/label", map[string]string{"label": "  Tosa "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tosa", body["label"])

	w, _ = h.do(http.MethodPost, "/api/me/schedule/rename/commit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = h.do(http.MethodPost, "/api/me/schedule/tabs/VET/rename", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(http.MethodPatch, "/api/me/schedule/rename", map[string]string{"text": "   "})
	require.Equal(t, http.StatusOK, w.Code)
	w, body = h.do(http.MethodPost, "/api/me/schedule/rename/commit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Veterinário", body["label"])

	w, body = h.do(http.MethodGet, "/api/me/appointments?category=VET", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "VET", body["list"].(map[string]any)["category"])
}

func TestSessionsAreIsolated(t *testing.T) {
	h := newHarness(t)
	h.login()
	first := h.token

	_, _ = h.do(http.MethodPost, "/api/me/appointments/dialog/add", nil)

	// novo login = nova sessão, sem diálogo aberto
	h.login()
	require.NotEqual(t, first, h.token)
	w, body := h.do(http.MethodGet, "/api/me/appointments/dialog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "idle", body["dialog"].(map[string]any)["state"])

	h.token = first
	_, body = h.do(http.MethodGet, "/api/me/appointments/dialog", nil)
	assert.Equal(t, "adding", body["dialog"].(map[string]any)["state"])
}

func TestStatsClientsAndSettings(t *testing.T) {
	h := newHarness(t)
	h.login()

	w, body := h.do(http.MethodGet, "/api/me/stats/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["totalClients"])
	assert.Len(t, body["monthlyGrowth"], 12)

	w, body = h.do(http.MethodGet, "/api/me/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total"])

	w, body = h.do(http.MethodGet, "/api/me/settings/webhooks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["groups"], 4)

	w, body = h.do(http.MethodPut, "/api/me/settings/webhooks", map[string]string{"confirma": "notaurl"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, body = h.do(http.MethodPut, "/api/me/settings/webhooks", map[string]string{"confirma": "https://n8n.local/ok"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://n8n.local/ok", body["webhooks"].(map[string]any)["confirma"])
	assert.Equal(t, []string{"Configurações salvas"}, noticeTitles(body))
}

func TestFailedSettingsSaveKeepsPendingNotices(t *testing.T) {
	h := newHarness(t)
	h.login()

	require.NoError(t, h.sessions.Do(h.sessionID(), 1, func(s *schedule.Session) error {
		s.Inbox.Notify(notify.Notice{Title: "Agendamento criado"})
		return nil
	}))

	w, _ := h.do(http.MethodPut, "/api/me/settings/webhooks", map[string]string{"agenda": "not a url"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, body := h.do(http.MethodGet, "/api/me/appointments/dialog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Agendamento criado"}, noticeTitles(body))
}

func TestMiddlewareRejectsTokenWithoutSession(t *testing.T) {
	h := newHarness(t)

	tok, err := middleware.SignToken(testSecret, time.Hour, 1, "admin", "", time.Now())
	require.NoError(t, err)
	h.token = tok

	w, _ := h.do(http.MethodGet, "/api/me/schedule", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}


