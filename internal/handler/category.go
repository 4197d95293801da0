package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler serves the categories page.
type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

func (h *CategoryHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	categories, err := service.VisibleCategories(h.DB, user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.HTML(http.StatusOK, "categories.html", pageData(c, gin.H{
		"Categories": categories,
	}))
}

// Create adds a user category. Uniqueness is case-sensitive and checked
// only against the user's own categories; a global category with the
// same name does not block the creation.
func (h *CategoryHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := strings.TrimSpace(c.PostForm("category_name"))
	if name == "" {
		apology(c, http.StatusBadRequest, "missing_category_name")
		return
	}

	var count int64
	if err := h.DB.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", user.ID, name).
		Count(&count).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}
	if count > 0 {
		apology(c, http.StatusBadRequest, "used_category")
		return
	}

	userID := user.ID
	category := models.Category{UserID: &userID, Name: name}
	if err := h.DB.Create(&category).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	setFlash(c, "added_category")
	c.Redirect(http.StatusFound, "/categories")
}

// Delete removes a user's own category. Transactions, budgets and
// recurring rules keep the orphaned name; the schema does not enforce
// referential integrity on category names. Global categories have no
// owner and never match the user_id condition.
func (h *CategoryHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if idStr := c.PostForm("category_id"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil && id > 0 {
			h.DB.Where("id = ? AND user_id = ?", id, user.ID).
				Delete(&models.Category{})
			setFlash(c, "delete_category")
		}
	}

	c.Redirect(http.StatusFound, "/categories")
}
