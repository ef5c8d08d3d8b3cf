package client

import (
	"context"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
)

// Client is the remote API boundary. Every method is a single request;
// none of them touch client-side state.
type Client interface {
	CreateToken(ctx context.Context, creds models.Credentials) (*models.TokenPair, error)
	Register(ctx context.Context, creds models.Credentials) (*models.Account, error)

	CreateProfile(ctx context.Context, nickName string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error)
	// GetMyProfile returns the backend's collection as is; the session
	// owner's profile is its first element.
	GetMyProfile(ctx context.Context) ([]models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)

	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, p models.NewPost) (*models.Post, error)
	// PatchLiked partially updates a post, sending only its liked list.
	PatchLiked(ctx context.Context, postID int64, liked []int64) (*models.Post, error)
	// ReplaceLiked fully updates a post with title and liked list. It is the
	// only way to clear the list, since an empty partial update is ignored.
	ReplaceLiked(ctx context.Context, postID int64, title string, liked []int64) (*models.Post, error)

	ListComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, c models.NewComment) (*models.Comment, error)
}

// TokenSource yields the current session credential, or "" when anonymous.
type TokenSource interface {
	Token() string
}
