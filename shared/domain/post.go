package domain

// Post is the part of a chat post the file store reads.
type Post struct {
	Id       PostId        `json:"id"`
	Metadata *PostMetadata `json:"metadata,omitempty"`
}

// PostMetadata carries data the server embeds into a post.
// A nil Files means the post came without file metadata; an empty, non-nil
// Files means the post has no attachments.
type PostMetadata struct {
	Files []FileInfo `json:"files"`
}

// AttachedFiles returns the post's file metadata and whether the post carried any.
func (p Post) AttachedFiles() ([]FileInfo, bool) {
	if p.Metadata == nil || p.Metadata.Files == nil {
		return nil, false
	}
	return p.Metadata.Files, true
}

// PostList is a page of posts as the server sends it: Order lists post ids
// newest first, Posts holds the posts themselves.
type PostList struct {
	Order []PostId        `json:"order"`
	Posts map[PostId]Post `json:"posts"`
}

// DeletedPost identifies a deleted post and the files that went with it.
type DeletedPost struct {
	Id      PostId  `json:"id"`
	FileIds FileIds `json:"file_ids,omitempty"`
}
