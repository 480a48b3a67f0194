package api

import (
	"encoding/json"

	"github.com/itchan-dev/filestate/shared/domain"
)

// Request DTOs accepted by the event feed

// EventEnvelope is a tagged event as producers post it. Data holds the
// payload for the tag; a few tags carry extra top-level fields.
type EventEnvelope struct {
	Type      string            `json:"type" validate:"required"`
	Data      json.RawMessage   `json:"data,omitempty"`
	PostId    domain.PostId     `json:"postId,omitempty"`    // RECEIVED_FILES_FOR_POST
	ClientIds []domain.ClientId `json:"clientIds,omitempty"` // UPLOAD_FILES_FAILURE
}

// Response DTOs

type EventAcceptedResponse struct {
	EventId string `json:"event_id"`
	Type    string `json:"type"`
	Changed bool   `json:"changed"`
}

type PostFilesResponse struct {
	PostId  domain.PostId     `json:"post_id"`
	FileIds domain.FileIds    `json:"file_ids"`
	Files   []domain.FileInfo `json:"files"`
}

type FileResponse struct {
	File domain.FileInfo `json:"file"`
}
