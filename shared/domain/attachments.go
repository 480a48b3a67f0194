package domain

import "github.com/google/uuid"

// FileInfo is the metadata of one uploaded or attached file as the server
// reports it. Only Id, PostId and Failed are interpreted by the state store.
type FileInfo struct {
	Id              FileId   `json:"id"`
	UserId          UserId   `json:"user_id,omitempty"`
	PostId          PostId   `json:"post_id,omitempty"` // empty while the upload is pending
	CreateAt        int64    `json:"create_at,omitempty"`
	UpdateAt        int64    `json:"update_at,omitempty"`
	DeleteAt        int64    `json:"delete_at,omitempty"`
	Name            string   `json:"name,omitempty"`
	Extension       string   `json:"extension,omitempty"`
	Size            int64    `json:"size,omitempty"`
	MimeType        string   `json:"mime_type,omitempty"`
	Width           int      `json:"width,omitempty"`
	Height          int      `json:"height,omitempty"`
	HasPreviewImage bool     `json:"has_preview_image,omitempty"`
	MiniPreview     []byte   `json:"mini_preview,omitempty"`
	ClientId        ClientId `json:"clientId,omitempty"`
	Failed          bool     `json:"failed"`
}

// WithId returns a copy of f with Id replaced.
func (f FileInfo) WithId(id FileId) FileInfo {
	f.Id = id
	return f
}

// WithPostId returns a copy of f attached to postId.
func (f FileInfo) WithPostId(postId PostId) FileInfo {
	f.PostId = postId
	return f
}

// WithFailed returns a copy of f with the upload failure flag set to failed.
func (f FileInfo) WithFailed(failed bool) FileInfo {
	f.Failed = failed
	return f
}

// IsPending reports whether the file has not been attached to a post yet.
func (f FileInfo) IsPending() bool {
	return f.PostId == ""
}

// NewClientId returns a fresh temporary identifier for a pending upload.
func NewClientId() ClientId {
	return uuid.NewString()
}

// PublicLink is a shareable URL for a single file.
type PublicLink struct {
	Link string `json:"link"`
}
