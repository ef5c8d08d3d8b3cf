// Package workflows sequences the async operations into the named flows the
// front end triggers: boot, login, registration, logout and the post,
// comment, like and profile submissions.
//
// Each flow awaits one step before starting the next and reports every step
// it attempted. Refresh steps are best-effort: a failure is recorded and the
// flow moves on.
package workflows

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/client/services"
	"github.com/dmitrijs2005/snsclone/internal/client/state"
	"github.com/dmitrijs2005/snsclone/internal/client/validation"
	"github.com/dmitrijs2005/snsclone/internal/common"
	"github.com/dmitrijs2005/snsclone/internal/logging"
)

// Session is the persisted credential as seen by the flows.
type Session interface {
	Load(ctx context.Context) error
	IsAuthenticated() bool
	Clear(ctx context.Context) error
}

type Flows struct {
	session   Session
	auth      services.AuthService
	posts     services.PostService
	authSlice *state.AuthSlice
	postSlice *state.PostSlice
	logger    logging.Logger
}

func New(session Session, auth services.AuthService, posts services.PostService,
	authSlice *state.AuthSlice, postSlice *state.PostSlice, logger logging.Logger) *Flows {
	return &Flows{
		session:   session,
		auth:      auth,
		posts:     posts,
		authSlice: authSlice,
		postSlice: postSlice,
		logger:    logger,
	}
}

func (f *Flows) step(ctx context.Context, r *Report, name string, err error) bool {
	r.record(name, err)
	if err != nil {
		f.logger.Warn(ctx, "workflow step failed", "step", name, "error", err)
		return false
	}
	return true
}

// validate records a step only when v is invalid.
func (f *Flows) validate(ctx context.Context, r *Report, v any) bool {
	if err := validation.Validate(v); err != nil {
		return f.step(ctx, r, StepValidate, err)
	}
	return true
}

// refresh reloads the directory, posts and comments, in that order.
func (f *Flows) refresh(ctx context.Context, r *Report) {
	f.step(ctx, r, StepProfiles, f.auth.FetchAllProfiles(ctx).Err)
	f.step(ctx, r, StepPosts, f.posts.FetchPosts(ctx).Err)
	f.step(ctx, r, StepComments, f.posts.FetchComments(ctx).Err)
}

// Boot restores a stored session. Without one the sign-in flow stays open.
// A stored credential the backend no longer accepts reopens sign-in and
// nothing else is loaded.
func (f *Flows) Boot(ctx context.Context) Report {
	var r Report

	if !f.step(ctx, &r, StepLoadSession, f.session.Load(ctx)) || !f.session.IsAuthenticated() {
		f.authSlice.ShowSignIn()
		return r
	}

	f.authSlice.HideSignIn()
	if !f.step(ctx, &r, StepMyProfile, f.auth.FetchMyProfile(ctx).Err) {
		f.authSlice.ShowSignIn()
		return r
	}

	f.step(ctx, &r, StepPosts, f.posts.FetchPosts(ctx).Err)
	f.step(ctx, &r, StepProfiles, f.auth.FetchAllProfiles(ctx).Err)
	f.step(ctx, &r, StepComments, f.posts.FetchComments(ctx).Err)
	return r
}

// Login exchanges creds and, on success, loads everything the feed needs.
// Sign-in stays open unless both the exchange and my profile succeed.
func (f *Flows) Login(ctx context.Context, creds models.Credentials) Report {
	var r Report
	if !f.validate(ctx, &r, creds) {
		return r
	}

	ok := func() bool {
		f.authSlice.BeginCredentialOp()
		defer f.authSlice.EndCredentialOp()

		if !f.step(ctx, &r, StepLogin, f.auth.Login(ctx, creds).Err) {
			return false
		}
		f.refresh(ctx, &r)
		return f.step(ctx, &r, StepMyProfile, f.auth.FetchMyProfile(ctx).Err)
	}()

	if ok {
		f.authSlice.HideSignIn()
	} else {
		f.authSlice.ShowSignIn()
	}
	return r
}

// Register creates the account, logs in, creates the default profile and
// loads the feed. Once the account exists every later step is attempted
// whatever the outcome of the previous ones. A failed login or my-profile
// step reopens sign-in.
func (f *Flows) Register(ctx context.Context, creds models.Credentials) Report {
	var r Report
	if !f.validate(ctx, &r, creds) {
		return r
	}

	func() {
		f.authSlice.BeginCredentialOp()
		defer f.authSlice.EndCredentialOp()

		if !f.step(ctx, &r, StepRegister, f.auth.Register(ctx, creds).Err) {
			return
		}
		if f.step(ctx, &r, StepLogin, f.auth.Login(ctx, creds).Err) {
			f.authSlice.HideSignIn()
		} else {
			f.authSlice.ShowSignIn()
		}
		f.step(ctx, &r, StepCreateProfile, f.auth.CreateMyProfile(ctx, common.DefaultNickName).Err)
		f.refresh(ctx, &r)
		if !f.step(ctx, &r, StepMyProfile, f.auth.FetchMyProfile(ctx).Err) {
			f.authSlice.ShowSignIn()
		}
	}()

	f.authSlice.HideSignUp()
	return r
}

// Logout drops the credential and returns to the sign-in flow.
func (f *Flows) Logout(ctx context.Context) Report {
	var r Report
	f.step(ctx, &r, StepClearSession, f.session.Clear(ctx))

	f.authSlice.SetNickname("")
	f.authSlice.HideProfileEditor()
	f.postSlice.HideNewPost()
	f.authSlice.ShowSignIn()
	return r
}

// Refresh reloads the directory, posts and comments.
func (f *Flows) Refresh(ctx context.Context) Report {
	var r Report
	func() {
		f.postSlice.BeginPostOp()
		defer f.postSlice.EndPostOp()
		f.refresh(ctx, &r)
	}()
	return r
}

// UpdateProfile sends my profile as currently edited, with an optional new
// picture.
func (f *Flows) UpdateProfile(ctx context.Context, img *models.Image) Report {
	var r Report
	me := f.authSlice.Snapshot().MyProfile
	upd := models.ProfileUpdate{ID: me.ID, NickName: me.NickName, Img: img}

	if !f.validate(ctx, &r, upd) {
		return r
	}

	func() {
		f.authSlice.BeginCredentialOp()
		defer f.authSlice.EndCredentialOp()
		f.step(ctx, &r, StepUpdateProfile, f.auth.UpdateMyProfile(ctx, upd).Err)
	}()

	f.authSlice.HideProfileEditor()
	return r
}

func (f *Flows) SubmitPost(ctx context.Context, p models.NewPost) Report {
	var r Report
	if !f.validate(ctx, &r, p) {
		return r
	}

	func() {
		f.postSlice.BeginPostOp()
		defer f.postSlice.EndPostOp()
		f.step(ctx, &r, StepCreatePost, f.posts.CreatePost(ctx, p).Err)
	}()

	f.postSlice.HideNewPost()
	return r
}

func (f *Flows) SubmitComment(ctx context.Context, text string, postID int64) Report {
	var r Report
	c := models.NewComment{Text: text, Post: postID}
	if !f.validate(ctx, &r, c) {
		return r
	}

	f.postSlice.BeginPostOp()
	defer f.postSlice.EndPostOp()
	f.step(ctx, &r, StepCreateComment, f.posts.CreateComment(ctx, c).Err)
	return r
}

// ToggleLike flips my like on postID, using the post as currently held in
// state.
func (f *Flows) ToggleLike(ctx context.Context, postID int64) Report {
	var r Report
	post, ok := f.postSlice.Post(postID)
	if !ok {
		f.step(ctx, &r, StepLookupPost, fmt.Errorf("post %d: %w", postID, common.ErrorNotFound))
		return r
	}

	t := models.LikeToggle{
		ID:           post.ID,
		Title:        post.Title,
		CurrentLiked: post.Liked,
		ActingUser:   f.authSlice.Snapshot().MyProfile.UserProfile,
	}

	f.postSlice.BeginPostOp()
	defer f.postSlice.EndPostOp()
	f.step(ctx, &r, StepToggleLike, f.posts.ToggleLiked(ctx, t).Err)
	return r
}
