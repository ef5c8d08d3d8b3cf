package models

import "slices"

// Clone returns a copy of p that shares no memory with it.
func (p Post) Clone() Post {
	p.Liked = slices.Clone(p.Liked)
	return p
}

// ClonePosts deep-copies a post list.
func ClonePosts(posts []Post) []Post {
	if posts == nil {
		return nil
	}
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}
