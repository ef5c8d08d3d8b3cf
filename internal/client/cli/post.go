package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/filex"
)

var errUsagePostID = errors.New("a numeric post id is required")

// readImage is a test seam for loading a picture from disk.
var readImage = func(path string) (*models.Image, error) {
	name, data, err := filex.ReadNamed(path)
	if err != nil {
		return nil, err
	}
	return &models.Image{Name: name, Data: data}, nil
}

// promptImage asks for an image path. An empty answer means no image.
func (a *App) promptImage(prompt string) (*models.Image, error) {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil || path == "" {
		return nil, err
	}
	return readImage(path)
}

func parsePostID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errUsagePostID
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q: %w", args[0], errUsagePostID)
	}
	return id, nil
}

// Post opens the new-post form, reads a title and a picture and submits them.
func (a *App) Post(ctx context.Context) error {
	a.postSlice.ShowNewPost()

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		a.postSlice.HideNewPost()
		return err
	}
	img, err := a.promptImage("Enter image path")
	if err != nil {
		a.postSlice.HideNewPost()
		return err
	}

	r := a.flows.SubmitPost(ctx, models.NewPost{Title: title, Img: img})
	a.printReport(r)
	if r.OK() {
		fmt.Fprintln(a.out, "Posted!")
	}
	return nil
}

// Comment reads comment text for the post given as the first argument.
func (a *App) Comment(ctx context.Context, args []string) error {
	id, err := parsePostID(args)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}

	a.printReport(a.flows.SubmitComment(ctx, text, id))
	return nil
}

// Like toggles my like on the post given as the first argument.
func (a *App) Like(ctx context.Context, args []string) error {
	id, err := parsePostID(args)
	if err != nil {
		return err
	}

	r := a.flows.ToggleLike(ctx, id)
	a.printReport(r)
	if r.OK() {
		if p, ok := a.postSlice.Post(id); ok {
			fmt.Fprintf(a.out, "#%d now has %d like(s)\n", id, len(p.Liked))
		}
	}
	return nil
}
