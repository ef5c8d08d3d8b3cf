package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snsclone/internal/client/async"
	"github.com/dmitrijs2005/snsclone/internal/client/client"
	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/client/state"
)

type PostService interface {
	FetchPosts(ctx context.Context) async.Result[[]models.Post]
	CreatePost(ctx context.Context, p models.NewPost) async.Result[models.Post]
	FetchComments(ctx context.Context) async.Result[[]models.Comment]
	CreateComment(ctx context.Context, c models.NewComment) async.Result[models.Comment]
	// ToggleLiked flips the acting user's like and replaces the post with
	// the backend's answer.
	ToggleLiked(ctx context.Context, t models.LikeToggle) async.Result[models.Post]
}

type postService struct {
	client  client.Client
	gateway *async.Gateway
	slice   *state.PostSlice
}

func NewPostService(c client.Client, g *async.Gateway, slice *state.PostSlice) PostService {
	return &postService{client: c, gateway: g, slice: slice}
}

func (s *postService) FetchPosts(ctx context.Context) async.Result[[]models.Post] {
	return async.Do(ctx, s.gateway, "posts/fetch", func(ctx context.Context) ([]models.Post, error) {
		posts, err := s.client.ListPosts(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch posts error: %w", err)
		}
		return posts, nil
	}, s.slice.ReplacePosts)
}

func (s *postService) CreatePost(ctx context.Context, p models.NewPost) async.Result[models.Post] {
	return async.Do(ctx, s.gateway, "posts/create", func(ctx context.Context) (models.Post, error) {
		post, err := s.client.CreatePost(ctx, p)
		if err != nil {
			return models.Post{}, fmt.Errorf("create post error: %w", err)
		}
		return *post, nil
	}, s.slice.AppendPost)
}

func (s *postService) FetchComments(ctx context.Context) async.Result[[]models.Comment] {
	return async.Do(ctx, s.gateway, "comments/fetch", func(ctx context.Context) ([]models.Comment, error) {
		cs, err := s.client.ListComments(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch comments error: %w", err)
		}
		return cs, nil
	}, s.slice.ReplaceComments)
}

func (s *postService) CreateComment(ctx context.Context, c models.NewComment) async.Result[models.Comment] {
	return async.Do(ctx, s.gateway, "comments/create", func(ctx context.Context) (models.Comment, error) {
		cm, err := s.client.CreateComment(ctx, c)
		if err != nil {
			return models.Comment{}, fmt.Errorf("create comment error: %w", err)
		}
		return *cm, nil
	}, s.slice.AppendComment)
}

func (s *postService) ToggleLiked(ctx context.Context, t models.LikeToggle) async.Result[models.Post] {
	plan := PlanLikeToggle(t)

	return async.Do(ctx, s.gateway, "posts/toggleLiked", func(ctx context.Context) (models.Post, error) {
		var (
			post *models.Post
			err  error
		)
		if plan.Mode == LikeReplace {
			post, err = s.client.ReplaceLiked(ctx, t.ID, plan.Title, plan.Liked)
		} else {
			post, err = s.client.PatchLiked(ctx, t.ID, plan.Liked)
		}
		if err != nil {
			return models.Post{}, fmt.Errorf("toggle like error: %w", err)
		}
		return *post, nil
	}, s.slice.ReplacePost)
}
