package handlers

import (
	"gorm.io/gorm"

	"github.com/textloom/rephrase-api/internal/config"
	"github.com/textloom/rephrase-api/internal/email"
	"github.com/textloom/rephrase-api/internal/rephrase"
	"github.com/textloom/rephrase-api/internal/store/rabbitmq"
	"github.com/textloom/rephrase-api/internal/store/redisstore"
)

type Handler struct {
	DB          *gorm.DB
	Cfg         config.Config
	Redis       *redisstore.Store
	Rabbit      *rabbitmq.Publisher
	SMTPSetting email.SMTPConfig
	RephraseSvc *rephrase.Service
}

func NewHandler(db *gorm.DB, cfg config.Config, r *redisstore.Store, rabbit *rabbitmq.Publisher) *Handler {
	repo := rephrase.NewRepo(db)
	svc := rephrase.NewService(repo)
	return &Handler{
		DB:     db,
		Cfg:    cfg,
		Redis:  r,
		Rabbit: rabbit,
		SMTPSetting: email.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		},
		RephraseSvc: svc,
	}
}
