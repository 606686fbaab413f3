package api

import (
	"github.com/rs/zerolog"

	"github.com/emanuelsistemas/drive/internal/config"
	"github.com/emanuelsistemas/drive/internal/database"
	"github.com/emanuelsistemas/drive/internal/drive"
	"github.com/emanuelsistemas/drive/internal/storage"
)

type Server struct {
	config  *config.Config
	store   *database.Store
	drive   *drive.Service
	storage *storage.LocalStorage
	log     zerolog.Logger
}

func NewServer(cfg *config.Config, store *database.Store, svc *drive.Service, storage *storage.LocalStorage, log zerolog.Logger) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		drive:   svc,
		storage: storage,
		log:     log,
	}
}
