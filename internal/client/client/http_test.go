package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

// captured is what the fake backend saw for the last request.
type captured struct {
	method    string
	path      string
	auth      string
	requestID string
	json      map[string]any
	fields    map[string][]string
	files     map[string]string
}

func newTestServer(t *testing.T, status int, reply any) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		got.requestID = r.Header.Get("X-Request-ID")

		switch ct := r.Header.Get("Content-Type"); {
		case ct == "application/json":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got.json))
		case len(ct) > 0:
			require.NoError(t, r.ParseMultipartForm(1<<20))
			got.fields = r.MultipartForm.Value
			got.files = map[string]string{}
			for name, fhs := range r.MultipartForm.File {
				f, err := fhs[0].Open()
				require.NoError(t, err)
				b, _ := io.ReadAll(f)
				_ = f.Close()
				got.files[name] = fhs[0].Filename + ":" + string(b)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch v := reply.(type) {
		case nil:
		case string:
			_, _ = io.WriteString(w, v)
		default:
			_ = json.NewEncoder(w).Encode(v)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func newTestClient(t *testing.T, baseURL string, token string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(baseURL, staticToken(token), logging.NewDiscardLogger())
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_InvalidURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.com", staticToken(""), logging.NewDiscardLogger())
	require.Error(t, err)

	_, err = NewHTTPClient("://bad", staticToken(""), logging.NewDiscardLogger())
	require.Error(t, err)
}

func TestNewHTTPClient_AppendsTrailingSlash(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, []models.Post{})
	c := newTestClient(t, srv.URL+"/v1", "")

	_, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/v1/api/post/", got.path)
}

func TestCreateToken_SendsJSONWithoutAuth(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, models.TokenPair{Access: "acc", Refresh: "ref"})
	c := newTestClient(t, srv.URL, "stale")

	pair, err := c.CreateToken(context.Background(), models.Credentials{Email: "a@b.c", Password: "pass"})
	require.NoError(t, err)

	assert.Equal(t, "acc", pair.Access)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/authen/jwt/create", got.path)
	assert.Empty(t, got.auth)
	assert.NotEmpty(t, got.requestID)
	assert.Equal(t, map[string]any{"email": "a@b.c", "password": "pass"}, got.json)
}

func TestRegister(t *testing.T) {
	srv, got := newTestServer(t, http.StatusCreated, models.Account{ID: 3, Email: "a@b.c"})
	c := newTestClient(t, srv.URL, "")

	acc, err := c.Register(context.Background(), models.Credentials{Email: "a@b.c", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), acc.ID)
	assert.Equal(t, "/api/register/", got.path)
}

func TestCreateProfile_AttachesToken(t *testing.T) {
	srv, got := newTestServer(t, http.StatusCreated, models.Profile{ID: 1, NickName: "anonymous", UserProfile: 7})
	c := newTestClient(t, srv.URL, "tok")

	p, err := c.CreateProfile(context.Background(), "anonymous")
	require.NoError(t, err)

	assert.Equal(t, "JWT tok", got.auth)
	assert.Equal(t, "/api/profile/", got.path)
	assert.Equal(t, map[string]any{"nickName": "anonymous"}, got.json)
	assert.Equal(t, int64(7), p.UserProfile)
}

func TestUpdateProfile_Multipart(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, models.Profile{ID: 4, NickName: "neo"})
	c := newTestClient(t, srv.URL, "tok")

	_, err := c.UpdateProfile(context.Background(), models.ProfileUpdate{
		ID:       4,
		NickName: "neo",
		Img:      &models.Image{Name: "me.png", Data: []byte("png")},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/profile/4/", got.path)
	assert.Equal(t, []string{"neo"}, got.fields["nickName"])
	assert.Equal(t, "me.png:png", got.files["img"])
}

func TestUpdateProfile_NoImage(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, models.Profile{ID: 4, NickName: "neo"})
	c := newTestClient(t, srv.URL, "tok")

	_, err := c.UpdateProfile(context.Background(), models.ProfileUpdate{ID: 4, NickName: "neo"})
	require.NoError(t, err)
	assert.Empty(t, got.files)
}

func TestGetMyProfile_ReturnsCollection(t *testing.T) {
	want := []models.Profile{{ID: 1, NickName: "me", UserProfile: 2}}
	srv, got := newTestServer(t, http.StatusOK, want)
	c := newTestClient(t, srv.URL, "tok")

	res, err := c.GetMyProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/myprofile/", got.path)
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("profiles mismatch (-want +got):\n%s", diff)
	}
}

func TestListEndpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("profiles", func(t *testing.T) {
		srv, got := newTestServer(t, http.StatusOK, []models.Profile{{ID: 1}})
		res, err := newTestClient(t, srv.URL, "tok").ListProfiles(ctx)
		require.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "/api/profile/", got.path)
	})

	t.Run("posts", func(t *testing.T) {
		srv, got := newTestServer(t, http.StatusOK, []models.Post{{ID: 1, Liked: []int64{2}}})
		res, err := newTestClient(t, srv.URL, "tok").ListPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, res[0].Liked)
		assert.Equal(t, "/api/post/", got.path)
	})

	t.Run("comments", func(t *testing.T) {
		srv, got := newTestServer(t, http.StatusOK, []models.Comment{{ID: 1, Post: 9}})
		res, err := newTestClient(t, srv.URL, "tok").ListComments(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(9), res[0].Post)
		assert.Equal(t, "/api/comment/", got.path)
	})
}

func TestCreatePost_Multipart(t *testing.T) {
	srv, got := newTestServer(t, http.StatusCreated, models.Post{ID: 5, Title: "sunset"})
	c := newTestClient(t, srv.URL, "tok")

	p, err := c.CreatePost(context.Background(), models.NewPost{
		Title: "sunset",
		Img:   &models.Image{Name: "s.jpg", Data: []byte("jpg")},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, []string{"sunset"}, got.fields["title"])
	assert.Equal(t, "s.jpg:jpg", got.files["img"])
}

func TestPatchLiked_RepeatsLikedParts(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, models.Post{ID: 5, Liked: []int64{1, 2}})
	c := newTestClient(t, srv.URL, "tok")

	_, err := c.PatchLiked(context.Background(), 5, []int64{1, 2})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, "/api/post/5/", got.path)
	assert.Equal(t, []string{"1", "2"}, got.fields["liked"])
	assert.NotContains(t, got.fields, "title")
}

func TestReplaceLiked_EmptyListSendsOnlyTitle(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, models.Post{ID: 5, Title: "t", Liked: []int64{}})
	c := newTestClient(t, srv.URL, "tok")

	p, err := c.ReplaceLiked(context.Background(), 5, "t", nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, []string{"t"}, got.fields["title"])
	assert.NotContains(t, got.fields, "liked")
	assert.Empty(t, p.Liked)
}

func TestCreateComment(t *testing.T) {
	srv, got := newTestServer(t, http.StatusCreated, models.Comment{ID: 8, Text: "nice", Post: 5})
	c := newTestClient(t, srv.URL, "tok")

	cm, err := c.CreateComment(context.Background(), models.NewComment{Text: "nice", Post: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(8), cm.ID)
	assert.Equal(t, map[string]any{"text": "nice", "post": float64(5)}, got.json)
}

func TestAnonymousRequest_NoAuthHeader(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, []models.Post{})
	c := newTestClient(t, srv.URL, "")

	_, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.auth)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"detail":"no"}`, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, nil, ErrUnauthorized},
		{"bad request", http.StatusBadRequest, `{"email":["exists"]}`, ErrRejected},
		{"not found", http.StatusNotFound, nil, ErrRejected},
		{"server error", http.StatusInternalServerError, "boom", ErrUnavailable},
		{"bad gateway", http.StatusBadGateway, nil, ErrUnavailable},
		{"garbage body", http.StatusOK, "not json", ErrUnexpectedResponse},
		{"empty body", http.StatusOK, nil, ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			c := newTestClient(t, srv.URL, "tok")

			_, err := c.ListPosts(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRejectedError_KeepsBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest, `{"email":["exists"]}`)
	c := newTestClient(t, srv.URL, "")

	_, err := c.Register(context.Background(), models.Credentials{Email: "a@b.c", Password: "pass"})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "exists")
}

func TestTransportError_IsUnavailable(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, nil)
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, "")
	_, err := c.ListPosts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestWithTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	own := &http.Client{}
	c, err := NewHTTPClient(srv.URL, staticToken(""), logging.NewDiscardLogger(),
		WithHTTPClient(own), WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.ListPosts(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, own.Timeout, "caller's client must keep its own timeout")
}

func TestContextCancel(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, []models.Post{})
	c := newTestClient(t, srv.URL, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListPosts(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
