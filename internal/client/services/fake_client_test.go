package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	CreateTokenRet *models.TokenPair
	CreateTokenErr error
	RegisterRet    *models.Account
	RegisterErr    error

	CreateProfileRet *models.Profile
	CreateProfileErr error
	UpdateProfileRet *models.Profile
	UpdateProfileErr error
	MyProfileRet     []models.Profile
	MyProfileErr     error
	ProfilesRet      []models.Profile
	ProfilesErr      error

	PostsRet      []models.Post
	PostsErr      error
	CreatePostRet *models.Post
	CreatePostErr error

	// LikedErr fails both like calls. On success the post is echoed back
	// with the liked list and title that were sent.
	LikedErr error

	CommentsRet      []models.Comment
	CommentsErr      error
	CreateCommentRet *models.Comment
	CreateCommentErr error

	// argument capture
	LastCreds      models.Credentials
	LastNickName   string
	LastUpdate     models.ProfileUpdate
	LastNewPost    models.NewPost
	LastNewComment models.NewComment
	LastLikeMethod string
	LastLikePostID int64
	LastLikeTitle  string
	LastLiked      []int64
	Calls          []string
}

func (f *fakeClient) CreateToken(_ context.Context, creds models.Credentials) (*models.TokenPair, error) {
	f.Calls = append(f.Calls, "CreateToken")
	f.LastCreds = creds
	return f.CreateTokenRet, f.CreateTokenErr
}

func (f *fakeClient) Register(_ context.Context, creds models.Credentials) (*models.Account, error) {
	f.Calls = append(f.Calls, "Register")
	f.LastCreds = creds
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) CreateProfile(_ context.Context, nickName string) (*models.Profile, error) {
	f.Calls = append(f.Calls, "CreateProfile")
	f.LastNickName = nickName
	return f.CreateProfileRet, f.CreateProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	f.Calls = append(f.Calls, "UpdateProfile")
	f.LastUpdate = upd
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) GetMyProfile(context.Context) ([]models.Profile, error) {
	f.Calls = append(f.Calls, "GetMyProfile")
	return f.MyProfileRet, f.MyProfileErr
}

func (f *fakeClient) ListProfiles(context.Context) ([]models.Profile, error) {
	f.Calls = append(f.Calls, "ListProfiles")
	return f.ProfilesRet, f.ProfilesErr
}

func (f *fakeClient) ListPosts(context.Context) ([]models.Post, error) {
	f.Calls = append(f.Calls, "ListPosts")
	return f.PostsRet, f.PostsErr
}

func (f *fakeClient) CreatePost(_ context.Context, p models.NewPost) (*models.Post, error) {
	f.Calls = append(f.Calls, "CreatePost")
	f.LastNewPost = p
	return f.CreatePostRet, f.CreatePostErr
}

func (f *fakeClient) PatchLiked(_ context.Context, postID int64, liked []int64) (*models.Post, error) {
	f.Calls = append(f.Calls, "PatchLiked")
	f.LastLikeMethod, f.LastLikePostID, f.LastLikeTitle, f.LastLiked = "PATCH", postID, "", slices.Clone(liked)
	if f.LikedErr != nil {
		return nil, f.LikedErr
	}
	return &models.Post{ID: postID, Liked: slices.Clone(liked)}, nil
}

func (f *fakeClient) ReplaceLiked(_ context.Context, postID int64, title string, liked []int64) (*models.Post, error) {
	f.Calls = append(f.Calls, "ReplaceLiked")
	f.LastLikeMethod, f.LastLikePostID, f.LastLikeTitle, f.LastLiked = "PUT", postID, title, slices.Clone(liked)
	if f.LikedErr != nil {
		return nil, f.LikedErr
	}
	return &models.Post{ID: postID, Title: title, Liked: slices.Clone(liked)}, nil
}

func (f *fakeClient) ListComments(context.Context) ([]models.Comment, error) {
	f.Calls = append(f.Calls, "ListComments")
	return f.CommentsRet, f.CommentsErr
}

func (f *fakeClient) CreateComment(_ context.Context, c models.NewComment) (*models.Comment, error) {
	f.Calls = append(f.Calls, "CreateComment")
	f.LastNewComment = c
	return f.CreateCommentRet, f.CreateCommentErr
}

type fakeTokenStore struct {
	SaveErr   error
	LastToken string
	LastEmail string
}

func (f *fakeTokenStore) Save(_ context.Context, token, email string) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.LastToken, f.LastEmail = token, email
	return nil
}
