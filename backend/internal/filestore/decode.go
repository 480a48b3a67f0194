package filestore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/itchan-dev/filestate/shared/api"
	"github.com/itchan-dev/filestate/shared/domain"
)

var ErrMalformedPayload = errors.New("malformed event payload")

// DecodeEvent turns a wire envelope into a typed event. Tags the store does
// not handle decode to UnknownEvent. Payload fields that are missing decode
// to their zero values; only payloads of the wrong JSON shape are rejected.
func DecodeEvent(env api.EventEnvelope) (Event, error) {
	tag := EventType(env.Type)
	switch tag {
	case TypeReceivedUploadFiles:
		var files []domain.FileInfo
		if err := decodeData(env, &files); err != nil {
			return nil, err
		}
		return UploadFilesReceived{Files: files}, nil

	case TypeReceivedFilesForPost:
		var files []domain.FileInfo
		if err := decodeData(env, &files); err != nil {
			return nil, err
		}
		return PostFilesReceived{PostId: env.PostId, Files: files}, nil

	case TypeUpdateFilesForPost:
		var e FilesForPostUpdated
		if err := decodeData(env, &e); err != nil {
			return nil, err
		}
		return e, nil

	case TypeUploadFilesFailure:
		return UploadFilesFailed{ClientIds: env.ClientIds}, nil

	case TypeReceivedNewPost, TypeReceivedPost:
		var post domain.Post
		if err := decodeData(env, &post); err != nil {
			return nil, err
		}
		return PostReceived{Post: post, New: tag == TypeReceivedNewPost}, nil

	case TypeReceivedPosts:
		var list domain.PostList
		if err := decodeData(env, &list); err != nil {
			return nil, err
		}
		return PostsReceived{Posts: list}, nil

	case TypePostDeleted, TypePostRemoved:
		// Without a post there is nothing to delete.
		if isEmptyData(env.Data) {
			return UnknownEvent{Tag: tag}, nil
		}
		var post domain.DeletedPost
		if err := decodeData(env, &post); err != nil {
			return nil, err
		}
		return PostDeleted{Post: post, Removed: tag == TypePostRemoved}, nil

	case TypeReceivedFilePublicLink:
		var link domain.PublicLink
		if err := decodeData(env, &link); err != nil {
			return nil, err
		}
		return PublicLinkReceived{Link: link}, nil

	case TypeLogoutSuccess:
		return LogoutSucceeded{}, nil

	default:
		return UnknownEvent{Tag: tag}, nil
	}
}

func isEmptyData(data json.RawMessage) bool {
	return len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func decodeData(env api.EventEnvelope, v any) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedPayload, env.Type, err)
	}
	return nil
}
