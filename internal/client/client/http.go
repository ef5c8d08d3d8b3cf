package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/common"
	"github.com/dmitrijs2005/snsclone/internal/logging"
	"github.com/dmitrijs2005/snsclone/internal/netx"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of an error response is kept in the error text.
const maxErrorBody = 512

// HTTPClient talks JSON and multipart over HTTP to the SNS backend.
// Authenticated requests carry "Authorization: JWT <token>", the token being
// read from the TokenSource on every call.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero means no limit. The timeout is set
// on a copy, so a client passed with WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// NewHTTPClient validates baseURL and returns a client bound to tokens.
func NewHTTPClient(baseURL string, tokens TokenSource, logger logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &HTTPClient{baseURL: u, http: &http.Client{}, tokens: tokens, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) CreateToken(ctx context.Context, creds models.Credentials) (*models.TokenPair, error) {
	var out models.TokenPair
	if err := c.doJSON(ctx, http.MethodPost, pathToken, false, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (*models.Account, error) {
	var out models.Account
	if err := c.doJSON(ctx, http.MethodPost, pathRegister, false, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateProfile(ctx context.Context, nickName string) (*models.Profile, error) {
	in := struct {
		NickName string `json:"nickName"`
	}{NickName: nickName}

	var out models.Profile
	if err := c.doJSON(ctx, http.MethodPost, pathProfiles, true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Profile, error) {
	form := netx.NewForm().Field("nickName", upd.NickName)
	if upd.Img != nil {
		form.File("img", upd.Img.Name, upd.Img.Data)
	}

	var out models.Profile
	if err := c.doForm(ctx, http.MethodPut, profilePath(upd.ID), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetMyProfile(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	if err := c.doJSON(ctx, http.MethodGet, pathMyProfile, true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var out []models.Profile
	if err := c.doJSON(ctx, http.MethodGet, pathProfiles, true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	if err := c.doJSON(ctx, http.MethodGet, pathPosts, true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, p models.NewPost) (*models.Post, error) {
	form := netx.NewForm().Field("title", p.Title)
	if p.Img != nil {
		form.File("img", p.Img.Name, p.Img.Data)
	}

	var out models.Post
	if err := c.doForm(ctx, http.MethodPost, pathPosts, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PatchLiked(ctx context.Context, postID int64, liked []int64) (*models.Post, error) {
	form := netx.NewForm()
	appendLiked(form, liked)

	var out models.Post
	if err := c.doForm(ctx, http.MethodPatch, postPath(postID), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReplaceLiked(ctx context.Context, postID int64, title string, liked []int64) (*models.Post, error) {
	form := netx.NewForm()
	appendLiked(form, liked)
	form.Field("title", title)

	var out models.Post
	if err := c.doForm(ctx, http.MethodPut, postPath(postID), form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListComments(ctx context.Context) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.doJSON(ctx, http.MethodGet, pathComments, true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, in models.NewComment) (*models.Comment, error) {
	var out models.Comment
	if err := c.doJSON(ctx, http.MethodPost, pathComments, true, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// appendLiked writes one "liked" part per user id.
func appendLiked(form *netx.Form, liked []int64) {
	for _, id := range liked {
		form.Field("liked", strconv.FormatInt(id, 10))
	}
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, auth bool, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, auth, body, contentType, out)
}

// doForm sends a multipart body. Multipart endpoints are all authenticated.
func (c *HTTPClient) doForm(ctx context.Context, method, path string, form *netx.Form, out any) error {
	body, contentType, err := form.Encode()
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	return c.do(ctx, method, path, true, body, contentType, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, body io.Reader, contentType string, out any) error {
	target := c.baseURL.ResolveReference(&url.URL{Path: path})
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "api request",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))

	if err := mapStatus(resp); err != nil {
		return err
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrUnexpectedResponse)
		}
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// mapStatus turns a non-2xx response into one of the sentinel errors,
// keeping a bounded excerpt of the body for diagnostics.
func mapStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(b))

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		sentinel = ErrUnauthorized
	case resp.StatusCode >= 500:
		sentinel = ErrUnavailable
	default:
		sentinel = ErrRejected
	}

	if detail == "" {
		return fmt.Errorf("%w: %s", sentinel, resp.Status)
	}
	return fmt.Errorf("%w: %s: %s", sentinel, resp.Status, detail)
}
