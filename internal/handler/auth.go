package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves login, logout and registration.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	if bcryptCost <= 0 {
		bcryptCost = 12
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageData(c, gin.H{}))
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" {
		apology(c, http.StatusForbidden, "error_username")
		return
	}
	if password == "" {
		apology(c, http.StatusForbidden, "error_password")
		return
	}

	var user models.User
	if err := h.DB.Where("username = ?", username).First(&user).Error; err != nil {
		apology(c, http.StatusForbidden, "invalid_login")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		apology(c, http.StatusForbidden, "invalid_login")
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// Revoke the session row so the token cannot be replayed.
	if tokenStr, err := c.Cookie(middleware.SessionCookie); err == nil && tokenStr != "" {
		if claims, err := util.ParseToken(h.JWTSecret, tokenStr); err == nil {
			h.DB.Model(&models.Session{}).
				Where("id = ?", claims.SessionID).
				Update("revoked", true)
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(c, gin.H{}))
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	confirmation := c.PostForm("confirmation")

	if username == "" {
		apology(c, http.StatusBadRequest, "missing_username")
		return
	}
	if password == "" {
		apology(c, http.StatusBadRequest, "missing_password")
		return
	}
	if confirmation == "" {
		apology(c, http.StatusBadRequest, "missing_confirmation")
		return
	}
	if password != confirmation {
		apology(c, http.StatusBadRequest, "match_error")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}
	if count > 0 {
		apology(c, http.StatusBadRequest, "used_username")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.BcryptCost)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := h.DB.Create(&user).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// startSession records a session row and sets the signed cookie.
func (h *AuthHandler) startSession(c *gin.Context, userID uint) error {
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(h.TokenTTL),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		return err
	}

	token, err := util.GenerateToken(h.JWTSecret, userID, session.ID, h.TokenTTL)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.TokenTTL.Seconds()), "/", "", false, true)
	return nil
}
