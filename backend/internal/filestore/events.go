package filestore

import "github.com/itchan-dev/filestate/shared/domain"

// EventType is the wire tag of an event.
type EventType string

const (
	TypeReceivedUploadFiles    EventType = "RECEIVED_UPLOAD_FILES"
	TypeReceivedFilesForPost   EventType = "RECEIVED_FILES_FOR_POST"
	TypeUpdateFilesForPost     EventType = "UPDATE_FILES_FOR_POST"
	TypeUploadFilesFailure     EventType = "UPLOAD_FILES_FAILURE"
	TypeReceivedNewPost        EventType = "RECEIVED_NEW_POST"
	TypeReceivedPost           EventType = "RECEIVED_POST"
	TypeReceivedPosts          EventType = "RECEIVED_POSTS"
	TypePostDeleted            EventType = "POST_DELETED"
	TypePostRemoved            EventType = "POST_REMOVED"
	TypeReceivedFilePublicLink EventType = "RECEIVED_FILE_PUBLIC_LINK"
	TypeLogoutSuccess          EventType = "LOGOUT_SUCCESS"
)

// Event is anything that can be dispatched to the store. Reducers only react
// to the event types declared in this package; everything else passes through.
type Event interface {
	Type() EventType
}

// UploadFilesReceived carries files the server accepted for an upload.
type UploadFilesReceived struct {
	Files []domain.FileInfo
}

// PostFilesReceived carries the complete, ordered file list of a post.
type PostFilesReceived struct {
	PostId domain.PostId
	Files  []domain.FileInfo
}

// FilesForPostUpdated replaces a pending upload placeholder once the real
// file and post exist.
type FilesForPostUpdated struct {
	Id            domain.FileId   `json:"id"`
	PostId        domain.PostId   `json:"postId"`
	ClientId      domain.ClientId `json:"clientId"`
	PendingPostId domain.PostId   `json:"pendingPostId"`
}

// UploadFilesFailed marks the pending uploads with the given client ids as failed.
type UploadFilesFailed struct {
	ClientIds []domain.ClientId
}

// PostReceived carries a single post. New is set for posts that just arrived
// over the websocket rather than being fetched.
type PostReceived struct {
	Post domain.Post
	New  bool
}

// PostsReceived carries a page of posts.
type PostsReceived struct {
	Posts domain.PostList
}

// PostDeleted is emitted for deleted posts. Removed is set when the post was
// removed from view locally instead of deleted on the server.
type PostDeleted struct {
	Post    domain.DeletedPost
	Removed bool
}

// PublicLinkReceived carries the last fetched public link.
type PublicLinkReceived struct {
	Link domain.PublicLink
}

// LogoutSucceeded resets the store.
type LogoutSucceeded struct{}

// UnknownEvent stands for a tag the store does not handle.
type UnknownEvent struct {
	Tag EventType
}

func (UploadFilesReceived) Type() EventType { return TypeReceivedUploadFiles }
func (PostFilesReceived) Type() EventType { return TypeReceivedFilesForPost }
func (FilesForPostUpdated) Type() EventType { return TypeUpdateFilesForPost }
func (UploadFilesFailed) Type() EventType { return TypeUploadFilesFailure }
func (PublicLinkReceived) Type() EventType { return TypeReceivedFilePublicLink }
func (LogoutSucceeded) Type() EventType { return TypeLogoutSuccess }
func (PostsReceived) Type() EventType { return TypeReceivedPosts }
func (e UnknownEvent) Type() EventType { return e.Tag }

func (e PostReceived) Type() EventType {
	if e.New {
		return TypeReceivedNewPost
	}
	return TypeReceivedPost
}

func (e PostDeleted) Type() EventType {
	if e.Removed {
		return TypePostRemoved
	}
	return TypePostDeleted
}
