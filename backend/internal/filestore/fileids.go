package filestore

import "github.com/itchan-dev/filestate/shared/domain"

// FileIdsByPostId maps post ids to the ordered ids of their attached files.
type FileIdsByPostId map[domain.PostId]domain.FileIds

// ReduceFileIdsByPostId applies e to the per-post file id lists. Lists are
// always overwritten wholesale, never appended to.
func ReduceFileIdsByPostId(state FileIdsByPostId, e Event) FileIdsByPostId {
	switch e := e.(type) {
	case PostFilesReceived:
		next := clone(state)
		next[e.PostId] = fileIds(e.Files)
		return next

	case FilesForPostUpdated:
		next := clone(state)
		next[e.PostId] = domain.FileIds{e.Id}
		delete(next, e.PendingPostId)
		return next

	case PostReceived:
		return storeFileIdsForPost(state, e.Post)

	case PostsReceived:
		next := state
		for _, post := range e.Posts.InOrder() {
			next = storeFileIdsForPost(next, post)
		}
		return next

	case PostDeleted:
		if _, ok := state[e.Post.Id]; !ok {
			return state
		}
		next := clone(state)
		delete(next, e.Post.Id)
		return next

	case LogoutSucceeded:
		return FileIdsByPostId{}

	default:
		return state
	}
}

func storeFileIdsForPost(state FileIdsByPostId, post domain.Post) FileIdsByPostId {
	files, ok := post.AttachedFiles()
	if !ok {
		return state
	}
	next := clone(state)
	next[post.Id] = fileIds(files)
	return next
}

func fileIds(files []domain.FileInfo) domain.FileIds {
	ids := make(domain.FileIds, 0, len(files))
	for _, file := range files {
		ids = append(ids, file.Id)
	}
	return ids
}
