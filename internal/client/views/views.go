// Package views derives what the front end renders from slice snapshots.
// Every function is pure and returns fresh slices; inputs are never modified.
package views

import (
	"slices"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/client/state"
)

// PostsByRecency returns posts newest first. Storage order is creation
// order, so this is the reverse of it.
func PostsByRecency(posts []models.Post) []models.Post {
	out := models.ClonePosts(posts)
	slices.Reverse(out)
	return out
}

// CommentsForPost keeps the comments on postID in their relative order.
func CommentsForPost(comments []models.Comment, postID int64) []models.Comment {
	out := make([]models.Comment, 0)
	for _, c := range comments {
		if c.Post == postID {
			out = append(out, c)
		}
	}
	return out
}

// AuthorOf finds the first profile owned by userID.
func AuthorOf(profiles []models.Profile, userID int64) (models.Profile, bool) {
	for _, p := range profiles {
		if p.UserProfile == userID {
			return p, true
		}
	}
	return models.Profile{}, false
}

func HasLiked(post models.Post, userID int64) bool {
	return slices.Contains(post.Liked, userID)
}

// Likers resolves the liked ids of post to profiles. Unknown ids are skipped.
func Likers(profiles []models.Profile, post models.Post) []models.Profile {
	out := make([]models.Profile, 0, len(post.Liked))
	for _, id := range post.Liked {
		if p, ok := AuthorOf(profiles, id); ok {
			out = append(out, p)
		}
	}
	return out
}

// IsSignedIn reports whether my profile has been loaded.
func IsSignedIn(auth state.AuthState) bool {
	return auth.MyProfile.NickName != ""
}

type CommentView struct {
	Comment   models.Comment
	Author    models.Profile
	HasAuthor bool
}

type PostView struct {
	Post      models.Post
	Author    models.Profile
	HasAuthor bool
	Comments  []CommentView
	LikedByMe bool
	Likers    []models.Profile
}

// BuildFeed assembles the feed newest first. Posts without a title are
// left out.
func BuildFeed(auth state.AuthState, posts state.PostState) []PostView {
	me := auth.MyProfile.UserProfile
	out := make([]PostView, 0, len(posts.Posts))

	for _, p := range PostsByRecency(posts.Posts) {
		if p.Title == "" {
			continue
		}
		author, ok := AuthorOf(auth.Profiles, p.UserPost)

		var comments []CommentView
		for _, c := range CommentsForPost(posts.Comments, p.ID) {
			ca, cok := AuthorOf(auth.Profiles, c.UserComment)
			comments = append(comments, CommentView{Comment: c, Author: ca, HasAuthor: cok})
		}

		out = append(out, PostView{
			Post:      p,
			Author:    author,
			HasAuthor: ok,
			Comments:  comments,
			LikedByMe: HasLiked(p, me),
			Likers:    Likers(auth.Profiles, p),
		})
	}
	return out
}
