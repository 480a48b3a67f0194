package setup

import (
	"github.com/itchan-dev/filestate/backend/internal/handler"
	"github.com/itchan-dev/filestate/backend/internal/service"
	"github.com/itchan-dev/filestate/shared/config"
	"github.com/itchan-dev/filestate/shared/jwt"
	"github.com/itchan-dev/filestate/shared/middleware"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Store          *service.Store
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) *Dependencies {
	store := service.NewStore()
	jwtService := jwt.New(cfg.JwtKey(), cfg.TokenTTL())

	return &Dependencies{
		Store:          store,
		Handler:        handler.New(store, cfg),
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Config:         cfg,
	}
}
