package handler

import (
	"context"

	"github.com/itchan-dev/filestate/backend/internal/filestore"
	"github.com/itchan-dev/filestate/shared/config"
)

// FileStore is the part of service.Store the handlers use.
type FileStore interface {
	Dispatch(ctx context.Context, e filestore.Event) bool
	State() filestore.State
}

type Handler struct {
	store FileStore
	cfg   *config.Config
}

func New(store FileStore, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}
