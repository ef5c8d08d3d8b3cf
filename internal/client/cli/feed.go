package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/client/views"
)

// Feed renders the posts newest first.
func (a *App) Feed(_ context.Context) error {
	feed := views.BuildFeed(a.authSlice.Snapshot(), a.postSlice.Snapshot())
	if len(feed) == 0 {
		fmt.Fprintln(a.out, "No posts yet.")
		return nil
	}
	renderFeed(a.out, feed)
	return nil
}

// nickOf is empty when the author is not in the directory.
func nickOf(p models.Profile, ok bool) string {
	if !ok {
		return ""
	}
	return p.NickName
}

// byline prefixes nick with sep, or renders nothing for an empty nick.
func byline(sep, nick string) string {
	if nick == "" {
		return ""
	}
	return sep + nick
}

func renderFeed(w io.Writer, feed []views.PostView) {
	for _, pv := range feed {
		heart := "♡"
		if pv.LikedByMe {
			heart = "♥"
		}

		fmt.Fprintf(w, "#%d %s%s\n", pv.Post.ID, pv.Post.Title, byline(" by ", nickOf(pv.Author, pv.HasAuthor)))
		if pv.Post.Img != "" {
			fmt.Fprintf(w, "   %s\n", pv.Post.Img)
		}

		likers := make([]string, 0, len(pv.Likers))
		for _, p := range pv.Likers {
			likers = append(likers, nickOf(p, true))
		}
		if len(likers) > 0 {
			fmt.Fprintf(w, "   %s %d (%s)\n", heart, len(pv.Post.Liked), strings.Join(likers, ", "))
		} else {
			fmt.Fprintf(w, "   %s %d\n", heart, len(pv.Post.Liked))
		}

		for _, cv := range pv.Comments {
			if nick := nickOf(cv.Author, cv.HasAuthor); nick != "" {
				fmt.Fprintf(w, "   %s: %s\n", nick, cv.Comment.Text)
			} else {
				fmt.Fprintf(w, "   %s\n", cv.Comment.Text)
			}
		}
	}
}
