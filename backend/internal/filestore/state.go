package filestore

import (
	"maps"
	"reflect"

	"github.com/itchan-dev/filestate/shared/domain"
)

// State is the combined file state as subscribers see it.
type State struct {
	Files           FilesById         `json:"files"`
	FileIdsByPostId FileIdsByPostId   `json:"fileIdsByPostId"`
	FilePublicLink  domain.PublicLink `json:"filePublicLink"`
}

// InitialState returns the empty state the store starts with and returns to on logout.
func InitialState() State {
	return State{
		Files:           FilesById{},
		FileIdsByPostId: FileIdsByPostId{},
		FilePublicLink:  domain.PublicLink{},
	}
}

// Reduce routes e to every sub-store and combines their results.
func Reduce(state State, e Event) State {
	return State{
		Files:           ReduceFiles(state.Files, e),
		FileIdsByPostId: ReduceFileIdsByPostId(state.FileIdsByPostId, e),
		FilePublicLink:  ReducePublicLink(state.FilePublicLink, e),
	}
}

// Same reports whether s and other share every sub-store, i.e. nothing changed
// between them.
func (s State) Same(other State) bool {
	return sameMap(s.Files, other.Files) &&
		sameMap(s.FileIdsByPostId, other.FileIdsByPostId) &&
		s.FilePublicLink == other.FilePublicLink
}

// SameFiles reports whether a and b are the same map, not merely equal.
func SameFiles(a, b FilesById) bool {
	return sameMap(a, b)
}

// SameFileIdsByPostId reports whether a and b are the same map, not merely equal.
func SameFileIdsByPostId(a, b FileIdsByPostId) bool {
	return sameMap(a, b)
}

func sameMap[M ~map[K]V, K comparable, V any](a, b M) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

// clone copies m into a new map that is safe to write even when m is nil.
func clone[M ~map[K]V, K comparable, V any](m M) M {
	next := make(M, len(m)+1)
	maps.Copy(next, m)
	return next
}

// File returns the metadata stored for id.
func (s State) File(id domain.FileId) (domain.FileInfo, bool) {
	file, ok := s.Files[id]
	return file, ok
}

// FileIdsForPost returns a copy of the ordered file ids recorded for postId.
func (s State) FileIdsForPost(postId domain.PostId) domain.FileIds {
	ids, ok := s.FileIdsByPostId[postId]
	if !ok {
		return nil
	}
	out := make(domain.FileIds, len(ids))
	copy(out, ids)
	return out
}

// FilesForPost returns the metadata of the post's files in attachment order.
// Ids without metadata are skipped.
func (s State) FilesForPost(postId domain.PostId) []domain.FileInfo {
	ids := s.FileIdsByPostId[postId]
	files := make([]domain.FileInfo, 0, len(ids))
	for _, id := range ids {
		if file, ok := s.Files[id]; ok {
			files = append(files, file)
		}
	}
	return files
}

// PublicLink returns the last received public link.
func (s State) PublicLink() domain.PublicLink {
	return s.FilePublicLink
}
