package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/itchan-dev/filestate/backend/internal/filestore"
	"github.com/itchan-dev/filestate/shared/api"
	"github.com/itchan-dev/filestate/shared/errors"
	"github.com/itchan-dev/filestate/shared/logger"
	mw "github.com/itchan-dev/filestate/shared/middleware"
	"github.com/itchan-dev/filestate/shared/utils"
)

// PostEvent decodes one tagged event and dispatches it to the store.
func (h *Handler) PostEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Public.MaxEventBytes)

	var body api.EventEnvelope
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	event, err := filestore.DecodeEvent(body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, errors.BadRequest(err.Error()))
		return
	}

	eventId := uuid.NewString()
	changed := h.store.Dispatch(r.Context(), event)

	logger.Component("event_feed").Debug("event dispatched",
		"event_id", eventId,
		"type", body.Type,
		"producer", mw.GetProducerFromContext(r),
		"changed", changed)

	utils.WriteJSON(w, http.StatusAccepted, api.EventAcceptedResponse{
		EventId: eventId,
		Type:    body.Type,
		Changed: changed,
	})
}
