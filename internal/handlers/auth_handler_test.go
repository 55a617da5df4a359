package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/glamourlabs/salon-manager/internal/config"
	dbpkg "github.com/glamourlabs/salon-manager/internal/db"
	"github.com/glamourlabs/salon-manager/internal/handlers"
	"github.com/glamourlabs/salon-manager/internal/middleware"
	"github.com/glamourlabs/salon-manager/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "segredo-de-teste",
		ServerPort: "0",
		Timezone:   "America/Sao_Paulo",
	}
}

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	cfg := testConfig()
	auth := handlers.NewAuthHandler(db, cfg)
	me := handlers.NewMeHandler(db)

	r := gin.New()
	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)

	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(cfg))
	secured.GET("/me", me.GetMe)

	return r, db
}

func postJSON(r *gin.Engine, path string, body any, token string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedAccount(t *testing.T, db *gorm.DB, email, password string) models.Account {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	account := models.Account{
		ID:           "acc-seed",
		Name:         "Maria",
		Email:        email,
		SalonName:    "Studio Glamour",
		PasswordHash: string(hashed),
	}
	require.NoError(t, db.Create(&account).Error)
	return account
}

func TestRegister(t *testing.T) {
	r, db := newAuthRouter(t)

	t.Run("cria conta com catálogo inicial e token", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", gin.H{
			"name":       "Maria",
			"email":      "maria@gmail.com",
			"password":   "secreta1",
			"salon_name": "Studio Glamour",
		}, "")

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Token   string `json:"token"`
			Account struct {
				ID string `json:"id"`
			} `json:"account"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)

		var services []models.Service
		require.NoError(t, db.Where("account_id = ?", resp.Account.ID).Find(&services).Error)
		assert.Len(t, services, 4)
	})

	t.Run("e-mail repetido é recusado", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", gin.H{
			"name":       "Outra",
			"email":      "maria@gmail.com",
			"password":   "secreta1",
			"salon_name": "Outro Salão",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email_already_exists")
	})

	t.Run("senha curta é recusada no binding", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", gin.H{
			"name":       "Maria",
			"email":      "curta@gmail.com",
			"password":   "123",
			"salon_name": "Studio",
		}, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	r, db := newAuthRouter(t)
	seedAccount(t, db, "maria@studio.com", "secreta1")

	t.Run("credenciais corretas devolvem token que abre o /me", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", gin.H{
			"email":    "maria@studio.com",
			"password": "secreta1",
		}, "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		me := httptest.NewRecorder()
		r.ServeHTTP(me, req)

		assert.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), "Studio Glamour")
	})

	t.Run("senha errada é 401", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", gin.H{
			"email":    "maria@studio.com",
			"password": "errada99",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("sem token o /me é 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
