package services

import "github.com/dmitrijs2005/snsclone/internal/client/models"

type LikeMode int

const (
	// LikePatch sends only the liked list as a partial update.
	LikePatch LikeMode = iota
	// LikeReplace sends a full update with the title and an empty liked
	// list. The backend ignores a partial update carrying no liked values,
	// so this is the only way to remove the last like.
	LikeReplace
)

func (m LikeMode) String() string {
	if m == LikeReplace {
		return "replace"
	}
	return "patch"
}

// LikePlan is the request a like toggle resolves to.
type LikePlan struct {
	Mode  LikeMode
	Liked []int64
	Title string
}

// PlanLikeToggle flips t.ActingUser's membership in t.CurrentLiked.
// CurrentLiked is not modified.
func PlanLikeToggle(t models.LikeToggle) LikePlan {
	residual := make([]int64, 0, len(t.CurrentLiked)+1)
	overlapped := false
	for _, id := range t.CurrentLiked {
		if id == t.ActingUser {
			overlapped = true
			continue
		}
		residual = append(residual, id)
	}

	switch {
	case !overlapped:
		return LikePlan{Mode: LikePatch, Liked: append(residual, t.ActingUser)}
	case len(residual) == 0:
		return LikePlan{Mode: LikeReplace, Liked: residual, Title: t.Title}
	default:
		return LikePlan{Mode: LikePatch, Liked: residual}
	}
}
