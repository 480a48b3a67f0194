package filestore

import (
	"maps"

	"github.com/itchan-dev/filestate/shared/domain"
)

// FilesById maps file ids to the latest known file metadata.
type FilesById map[domain.FileId]domain.FileInfo

// ReduceFiles applies e to the files-by-id map. It never mutates state; when
// e changes nothing the same map is returned.
func ReduceFiles(state FilesById, e Event) FilesById {
	switch e := e.(type) {
	case UploadFilesReceived:
		return mergeFiles(state, e.Files)

	case PostFilesReceived:
		return mergeFiles(state, e.Files)

	case FilesForPostUpdated:
		// Replace the pending placeholder with the uploaded file
		next := clone(state)
		next[e.Id] = state[e.ClientId].
			WithId(e.Id).
			WithPostId(e.PostId).
			WithFailed(false)
		// Runs after the write, so clientId == id drops the entry.
		delete(next, e.ClientId)
		return next

	case UploadFilesFailed:
		var next FilesById
		for _, id := range e.ClientIds {
			file, ok := state[id]
			if !ok {
				continue
			}
			if next == nil {
				next = clone(state)
			}
			next[id] = file.WithFailed(true)
		}
		if next == nil {
			return state
		}
		return next

	case PostReceived:
		return storeFilesForPost(state, e.Post)

	case PostsReceived:
		next := state
		for _, post := range e.Posts.InOrder() {
			next = storeFilesForPost(next, post)
		}
		return next

	case PostDeleted:
		var next FilesById
		for _, id := range e.Post.FileIds {
			if _, ok := state[id]; !ok {
				continue
			}
			if next == nil {
				next = clone(state)
			}
			delete(next, id)
		}
		if next == nil {
			return state
		}
		return next

	case LogoutSucceeded:
		return FilesById{}

	default:
		return state
	}
}

func mergeFiles(state FilesById, files []domain.FileInfo) FilesById {
	next := make(FilesById, len(state)+len(files))
	maps.Copy(next, state)
	for _, file := range files {
		next[file.Id] = file
	}
	return next
}

// storeFilesForPost adds the post's files that are not known yet.
// A file already in the store is never overwritten from post data.
func storeFilesForPost(state FilesById, post domain.Post) FilesById {
	files, ok := post.AttachedFiles()
	if !ok {
		return state
	}

	next := state
	cloned := false
	for _, file := range files {
		if _, exists := next[file.Id]; exists {
			continue
		}
		if !cloned {
			next = clone(state)
			cloned = true
		}
		next[file.Id] = file
	}
	return next
}
