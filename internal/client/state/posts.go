package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
)

// PostState is a point-in-time copy of the post slice. Posts and Comments
// are kept in the order the backend returned them, new entries appended.
type PostState struct {
	IsLoadingPost bool
	OpenNewPost   bool
	Posts         []models.Post
	Comments      []models.Comment
}

type PostSlice struct {
	mu sync.RWMutex
	s  PostState
}

func NewPostSlice() *PostSlice {
	return &PostSlice{s: PostState{Posts: []models.Post{}, Comments: []models.Comment{}}}
}

func (p *PostSlice) Snapshot() PostState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := p.s
	out.Posts = models.ClonePosts(p.s.Posts)
	out.Comments = slices.Clone(p.s.Comments)
	return out
}

// Post returns a copy of the post with id.
func (p *PostSlice) Post(id int64) (models.Post, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, post := range p.s.Posts {
		if post.ID == id {
			return post.Clone(), true
		}
	}
	return models.Post{}, false
}

func (p *PostSlice) update(fn func(s *PostState)) {
	p.mu.Lock()
	fn(&p.s)
	p.mu.Unlock()
}

func (p *PostSlice) BeginPostOp() { p.update(func(s *PostState) { s.IsLoadingPost = true }) }
func (p *PostSlice) EndPostOp()   { p.update(func(s *PostState) { s.IsLoadingPost = false }) }

func (p *PostSlice) ShowNewPost() { p.update(func(s *PostState) { s.OpenNewPost = true }) }
func (p *PostSlice) HideNewPost() { p.update(func(s *PostState) { s.OpenNewPost = false }) }

func (p *PostSlice) ReplacePosts(posts []models.Post) {
	posts = models.ClonePosts(posts)
	if posts == nil {
		posts = []models.Post{}
	}
	p.update(func(s *PostState) { s.Posts = posts })
}

func (p *PostSlice) AppendPost(post models.Post) {
	post = post.Clone()
	p.update(func(s *PostState) { s.Posts = append(s.Posts, post) })
}

// ReplacePost swaps the post with the same id in place. Unknown ids are ignored.
func (p *PostSlice) ReplacePost(post models.Post) {
	post = post.Clone()
	p.update(func(s *PostState) {
		for i := range s.Posts {
			if s.Posts[i].ID == post.ID {
				s.Posts[i] = post
			}
		}
	})
}

func (p *PostSlice) ReplaceComments(cs []models.Comment) {
	cs = slices.Clone(cs)
	if cs == nil {
		cs = []models.Comment{}
	}
	p.update(func(s *PostState) { s.Comments = cs })
}

func (p *PostSlice) AppendComment(c models.Comment) {
	p.update(func(s *PostState) { s.Comments = append(s.Comments, c) })
}
