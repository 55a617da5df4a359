package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/glamourlabs/salon-manager/internal/middleware"
	"github.com/glamourlabs/salon-manager/internal/models"
)

// Paleta fixa de etiquetas de cor da equipe
var staffColors = []string{
	"rose", "sky", "emerald", "amber", "violet", "fuchsia",
}

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Color string `json:"color"`
	// data URI opcional
	Photo string `json:"photo"`
}

type UpdateStaffRequest struct {
	Name  *string `json:"name,omitempty"`
	Role  *string `json:"role,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
	Color *string `json:"color,omitempty"`
	Photo *string `json:"photo,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("account_id = ?", accountID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(role) LIKE ?", like, like)
	}

	var staff []models.Staff
	if err := q.
		Order("created_at ASC").
		Find(&staff).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	color := req.Color
	if color == "" {
		// distribui a paleta pela ordem de criação
		var count int64
		h.db.Model(&models.Staff{}).Where("account_id = ?", accountID).Count(&count)
		color = staffColors[int(count)%len(staffColors)]
	}

	member := models.Staff{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Name:      req.Name,
		Role:      req.Role,
		Phone:     req.Phone,
		Email:     req.Email,
		Color:     color,
		Photo:     req.Photo,
	}

	if err := h.db.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	var member models.Staff
	if err := h.db.
		Where("id = ? AND account_id = ?", id, accountID).
		First(&member).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_staff"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Color != nil {
		member.Color = *req.Color
	}
	if req.Photo != nil {
		member.Photo = *req.Photo
	}

	if err := h.db.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// Delete preserva o histórico: agendamentos do profissional permanecem
func (h *StaffHandler) Delete(c *gin.Context) {
	accountID := c.MustGet(middleware.ContextAccountID).(string)
	id := c.Param("id")

	if err := h.db.
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&models.Staff{}).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
