package domain

import (
	"fmt"
	"slices"
)

// for debug
func (f FileInfo) String() string {
	return fmt.Sprintf("[id:%s, post_id:%s, name:%s, size:%d, mime:%s, failed:%t]", f.Id, f.PostId, f.Name, f.Size, f.MimeType, f.Failed)
}

// InOrder returns the posts of the list in Order, followed by any posts
// missing from Order sorted by id.
func (l PostList) InOrder() []Post {
	posts := make([]Post, 0, len(l.Posts))
	seen := make(map[PostId]bool, len(l.Posts))
	for _, id := range l.Order {
		post, ok := l.Posts[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		posts = append(posts, post)
	}

	var rest []PostId
	for id := range l.Posts {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	for _, id := range rest {
		posts = append(posts, l.Posts[id])
	}
	return posts
}
