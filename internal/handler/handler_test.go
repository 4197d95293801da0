package handler

import (
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Category{},
		&models.Budget{},
		&models.RecurringRule{},
		&models.Session{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// newTestRouter builds an engine with templates loaded and the request
// context pre-populated the way LocaleMiddleware/AuthMiddleware would.
func newTestRouter(t *testing.T, user *models.User) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*")
	r.Use(func(c *gin.Context) {
		c.Set(middleware.LangKey, "en")
		if user != nil {
			c.Set(middleware.CurrentUserKey, user)
		}
		c.Next()
	})
	return r
}

func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

func intToStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
