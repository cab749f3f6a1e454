package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/textloom/rephrase-api/internal/common"
	"github.com/textloom/rephrase-api/internal/config"
	"github.com/textloom/rephrase-api/internal/httpapi/handlers"
	"github.com/textloom/rephrase-api/internal/httpapi/middleware"
	"github.com/textloom/rephrase-api/internal/store/rabbitmq"
	"github.com/textloom/rephrase-api/internal/store/redisstore"
)

func NewRouter(db *gorm.DB, cfg config.Config, rds *redisstore.Store, rabbit *rabbitmq.Publisher) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, common.CodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, common.CodeValidationFailed, "method not allowed")
	})

	r.Use(middleware.RequestID())

	h := handlers.NewHandler(db, cfg, rds, rabbit)

	r.GET("/ping", h.Ping)

	// captcha
	r.POST("/captcha", h.SendCaptcha)

	// CRUD users register
	r.POST("/users", h.CreateUser)
	r.GET("/users/:id", h.GetUserByID)

	// auth
	r.POST("/login", h.Login)
	authGroup := r.Group("/")
	authGroup.Use(middleware.AuthRequired(cfg.JWTSecret))
	authGroup.GET("/me", h.Me)

	// Rephrase (JWT required)
	authGroup.POST("/rephrase/sessions", h.CreateRephraseSession)
	authGroup.GET("/rephrase/sessions", h.ListRephraseSessions)
	authGroup.PUT("/rephrase/sessions/:session_id", h.UpdateRephraseSession)
	authGroup.POST("/rephrase/sessions/:session_id/variants", h.CreateRephraseVariant)
	authGroup.GET("/rephrase/sessions/:session_id/variants", h.ListRephraseVariants)
	authGroup.PUT("/rephrase/sessions/:session_id/variants/:variant_id", h.UpdateRephraseVariant)
	authGroup.DELETE("/rephrase/sessions/:session_id/variants/:variant_id", h.DeleteRephraseVariant)

	return r
}
