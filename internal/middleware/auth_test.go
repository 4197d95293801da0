package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", AuthMiddleware(testSecret, db), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.String(http.StatusInternalServerError, "no user")
			return
		}
		c.String(http.StatusOK, user.Username)
	})
	return r
}

func get(r http.Handler, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedSession(t *testing.T, db *gorm.DB, revoked bool, expires time.Time) (models.User, string) {
	t.Helper()

	user := models.User{Username: "alice", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Revoked:   revoked,
		ExpiresAt: expires,
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}
	token, err := util.GenerateToken(testSecret, user.ID, session.ID, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user, token
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	db := openTestDB(t)
	_, token := seedSession(t, db, false, time.Now().Add(time.Hour))

	w := get(authRouter(db), token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "alice" {
		t.Errorf("body = %q, want alice", w.Body.String())
	}
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	db := openTestDB(t)

	w := get(authRouter(db), "")

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q, want /login", loc)
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	db := openTestDB(t)

	w := get(authRouter(db), "not-a-jwt")

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
}

func TestAuthMiddleware_RevokedSession(t *testing.T) {
	db := openTestDB(t)
	_, token := seedSession(t, db, true, time.Now().Add(time.Hour))

	w := get(authRouter(db), token)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
}

func TestAuthMiddleware_ExpiredSessionRow(t *testing.T) {
	db := openTestDB(t)
	_, token := seedSession(t, db, false, time.Now().Add(-time.Minute))

	w := get(authRouter(db), token)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
}

func TestAuthMiddleware_WrongSigningKey(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Username: "alice", PasswordHash: "x"}
	db.Create(&user)
	token, err := util.GenerateToken("other-secret", user.ID, uuid.NewString(), time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := get(authRouter(db), token)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
}
