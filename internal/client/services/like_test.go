package services

import (
	"testing"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestPlanLikeToggle(t *testing.T) {
	tests := []struct {
		name    string
		current []int64
		user    int64
		want    LikePlan
	}{
		{
			name:    "first like",
			current: []int64{},
			user:    1,
			want:    LikePlan{Mode: LikePatch, Liked: []int64{1}},
		},
		{
			name:    "nil list",
			current: nil,
			user:    1,
			want:    LikePlan{Mode: LikePatch, Liked: []int64{1}},
		},
		{
			name:    "like appended after others",
			current: []int64{3, 4},
			user:    1,
			want:    LikePlan{Mode: LikePatch, Liked: []int64{3, 4, 1}},
		},
		{
			name:    "last unlike is a full replace",
			current: []int64{1},
			user:    1,
			want:    LikePlan{Mode: LikeReplace, Liked: []int64{}, Title: "sunset"},
		},
		{
			name:    "unlike with residual is a patch",
			current: []int64{1, 2},
			user:    1,
			want:    LikePlan{Mode: LikePatch, Liked: []int64{2}},
		},
		{
			name:    "unlike keeps residual order",
			current: []int64{5, 1, 3},
			user:    1,
			want:    LikePlan{Mode: LikePatch, Liked: []int64{5, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanLikeToggle(models.LikeToggle{ID: 1, Title: "sunset", CurrentLiked: tt.current, ActingUser: tt.user})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanLikeToggle_DoesNotMutateInput(t *testing.T) {
	current := []int64{1, 2}
	_ = PlanLikeToggle(models.LikeToggle{CurrentLiked: current, ActingUser: 1})
	assert.Equal(t, []int64{1, 2}, current)
}

func TestPlanLikeToggle_NeverDuplicates(t *testing.T) {
	liked := []int64{}
	users := []int64{1, 2, 1, 3, 2, 2, 1, 3, 3}
	for _, u := range users {
		liked = PlanLikeToggle(models.LikeToggle{CurrentLiked: liked, ActingUser: u}).Liked

		seen := map[int64]bool{}
		for _, id := range liked {
			assert.False(t, seen[id], "duplicate %d in %v", id, liked)
			seen[id] = true
		}
	}
}

func TestPlanLikeToggle_TwiceReturnsToEmpty(t *testing.T) {
	first := PlanLikeToggle(models.LikeToggle{CurrentLiked: []int64{}, ActingUser: 7})
	assert.Equal(t, []int64{7}, first.Liked)

	second := PlanLikeToggle(models.LikeToggle{CurrentLiked: first.Liked, ActingUser: 7})
	assert.Empty(t, second.Liked)
	assert.Equal(t, LikeReplace, second.Mode)
}

func TestLikeModeString(t *testing.T) {
	assert.Equal(t, "patch", LikePatch.String())
	assert.Equal(t, "replace", LikeReplace.String())
}
