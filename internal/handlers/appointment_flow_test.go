package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbpkg "github.com/glamourlabs/salon-manager/internal/db"
	"github.com/glamourlabs/salon-manager/internal/models"
	"github.com/glamourlabs/salon-manager/internal/routes"
)

// sobe a árvore completa de rotas contra um banco em memória
func newAppRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db, testConfig(), zap.NewNop())

	seedAccount(t, db, "maria@studio.com", "secreta1")

	require.NoError(t, db.Create(&models.Client{
		ID: "cli-ana", AccountID: "acc-seed", Name: "Ana", Phone: "11988887777",
	}).Error)
	require.NoError(t, db.Create(&models.Staff{
		ID: "stf-bia", AccountID: "acc-seed", Name: "Bia", Role: "Cabeleireira",
	}).Error)
	require.NoError(t, db.Create(&models.Service{
		ID: "svc-corte", AccountID: "acc-seed", Name: "Corte Feminino", DurationMin: 60, Price: 80,
	}).Error)

	w := postJSON(r, "/api/auth/login", gin.H{
		"email":    "maria@studio.com",
		"password": "secreta1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return r, db, resp.Token
}

func getJSON(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAppointmentFlow(t *testing.T) {
	r, _, token := newAppRouter(t)

	create := gin.H{
		"clientId":  "cli-ana",
		"serviceId": "svc-corte",
		"staffId":   "stf-bia",
		"date":      "2026-09-15",
		"time":      "10:00",
	}

	var createdID string

	t.Run("cria agendamento", func(t *testing.T) {
		w := postJSON(r, "/api/me/appointments", create, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var ap models.Appointment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ap))
		createdID = ap.ID

		assert.Equal(t, "scheduled", ap.Status)
		assert.Equal(t, "booking", ap.Kind)
	})

	t.Run("mesmo slot é 409", func(t *testing.T) {
		w := postJSON(r, "/api/me/appointments", create, token)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "slot_taken")
	})

	t.Run("lista do dia resolve nomes e link", func(t *testing.T) {
		w := getJSON(r, "/api/me/appointments?date=2026-09-15", token)
		require.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.Contains(t, body, "Ana")
		assert.Contains(t, body, "Corte Feminino")
		assert.Contains(t, body, "R$80,00")
		assert.Contains(t, body, "wa.me/5511988887777")
	})

	t.Run("resumo do mês", func(t *testing.T) {
		w := getJSON(r, "/api/me/appointments/month?year=2026&month=9", token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Days []struct {
				Date  string `json:"date"`
				Count int    `json:"count"`
			} `json:"days"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Days, 30)
		assert.Equal(t, 1, resp.Days[14].Count)
	})

	t.Run("grade do dia marca a célula", func(t *testing.T) {
		w := getJSON(r, "/api/me/appointments/grid?date=2026-09-15", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), createdID)
	})

	t.Run("grade fixa de slots", func(t *testing.T) {
		w := getJSON(r, "/api/me/appointments/slots", token)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Slots []string `json:"slots"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Slots, 44)
	})

	t.Run("bloqueia outro slot", func(t *testing.T) {
		w := postJSON(r, "/api/me/appointments/blocks", gin.H{
			"staffId": "stf-bia",
			"date":    "2026-09-15",
			"time":    "11:00",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "blocked")
	})

	t.Run("conclui com pagamento", func(t *testing.T) {
		w := doJSON(r, http.MethodPatch, "/api/me/appointments/"+createdID+"/complete", gin.H{
			"paymentMethod": "pix",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "completed")
	})

	t.Run("remover duas vezes responde ok", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/me/appointments/"+createdID, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(r, http.MethodDelete, "/api/me/appointments/"+createdID, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("lembretes respondem mesmo sem o serviço de fundo", func(t *testing.T) {
		w := getJSON(r, "/api/me/reminders", token)
		require.Equal(t, http.StatusOK, w.Code)

		w = getJSON(r, "/api/me/reminders?live=1", token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("auditoria registra as ações", func(t *testing.T) {
		// a escrita de auditoria é assíncrona
		require.Eventually(t, func() bool {
			w := getJSON(r, "/api/me/audit-logs?entity=appointment", token)
			return w.Code == http.StatusOK &&
				bytes.Contains(w.Body.Bytes(), []byte("appointment_created"))
		}, 2*time.Second, 20*time.Millisecond)
	})
}
