package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/filestate/shared/api"
	"github.com/itchan-dev/filestate/shared/errors"
	"github.com/itchan-dev/filestate/shared/utils"
)

func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	fileId := chi.URLParam(r, "fileId")

	file, ok := h.store.State().File(fileId)
	if !ok {
		utils.WriteErrorAndStatusCode(w, errors.NotFound("File not found"))
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.FileResponse{File: file})
}

// GetPostFiles returns the post's files in attachment order. Unknown posts
// yield an empty list, as the store cannot tell them from posts without files.
func (h *Handler) GetPostFiles(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "postId")
	state := h.store.State()

	fileIds := state.FileIdsForPost(postId)
	if fileIds == nil {
		fileIds = []string{}
	}
	utils.WriteJSON(w, http.StatusOK, api.PostFilesResponse{
		PostId:  postId,
		FileIds: fileIds,
		Files:   state.FilesForPost(postId),
	})
}

func (h *Handler) GetPublicLink(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.store.State().PublicLink())
}

// GetState returns the whole combined state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.store.State())
}
