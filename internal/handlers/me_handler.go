package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/glamourlabs/salon-manager/internal/httperr"
	"github.com/glamourlabs/salon-manager/internal/middleware"
	"github.com/glamourlabs/salon-manager/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateMeRequest struct {
	Name      *string `json:"name,omitempty"`
	SalonName *string `json:"salon_name,omitempty"`
	Address   *string `json:"address,omitempty"`
	Password  *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var account models.Account
	if err := h.db.First(&account, "id = ?", accountID).Error; err != nil {
		httperr.Internal(c, "account_not_found", "Conta não encontrada.")
		return
	}

	c.JSON(http.StatusOK, accountPayload(&account))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var account models.Account
	if err := h.db.First(&account, "id = ?", accountID).Error; err != nil {
		httperr.Internal(c, "account_not_found", "Conta não encontrada.")
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.SalonName != nil {
		account.SalonName = *req.SalonName
	}
	if req.Address != nil {
		account.Address = *req.Address
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar a senha.")
			return
		}
		account.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&account).Error; err != nil {
		httperr.Internal(c, "failed_to_update_account", "Erro ao salvar a conta.")
		return
	}

	c.JSON(http.StatusOK, accountPayload(&account))
}
