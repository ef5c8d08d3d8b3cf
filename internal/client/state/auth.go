// Package state holds the client-side slices: the auth session with the
// profile directory, and the posts with their comments.
//
// Slices are mutated only through their methods. Snapshot returns a deep
// copy, so nothing a reader does can leak back into the slice.
package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
)

// AuthState is a point-in-time copy of the auth slice.
type AuthState struct {
	OpenSignIn    bool
	OpenSignUp    bool
	OpenProfile   bool
	IsLoadingAuth bool
	MyProfile     models.Profile
	Profiles      []models.Profile
}

type AuthSlice struct {
	mu sync.RWMutex
	s  AuthState
}

// NewAuthSlice starts with the sign-in flow open.
func NewAuthSlice() *AuthSlice {
	return &AuthSlice{s: AuthState{OpenSignIn: true, Profiles: []models.Profile{}}}
}

func (a *AuthSlice) Snapshot() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := a.s
	out.Profiles = slices.Clone(a.s.Profiles)
	return out
}

func (a *AuthSlice) update(fn func(s *AuthState)) {
	a.mu.Lock()
	fn(&a.s)
	a.mu.Unlock()
}

func (a *AuthSlice) BeginCredentialOp() { a.update(func(s *AuthState) { s.IsLoadingAuth = true }) }
func (a *AuthSlice) EndCredentialOp()   { a.update(func(s *AuthState) { s.IsLoadingAuth = false }) }

func (a *AuthSlice) ShowSignIn() { a.update(func(s *AuthState) { s.OpenSignIn = true }) }
func (a *AuthSlice) HideSignIn() { a.update(func(s *AuthState) { s.OpenSignIn = false }) }

func (a *AuthSlice) ShowSignUp() { a.update(func(s *AuthState) { s.OpenSignUp = true }) }
func (a *AuthSlice) HideSignUp() { a.update(func(s *AuthState) { s.OpenSignUp = false }) }

func (a *AuthSlice) ShowProfileEditor() { a.update(func(s *AuthState) { s.OpenProfile = true }) }
func (a *AuthSlice) HideProfileEditor() { a.update(func(s *AuthState) { s.OpenProfile = false }) }

// SetNickname edits the nickname of my profile locally. Nothing is sent.
func (a *AuthSlice) SetNickname(v string) {
	a.update(func(s *AuthState) { s.MyProfile.NickName = v })
}

// SetMyProfile replaces my profile in full.
func (a *AuthSlice) SetMyProfile(p models.Profile) {
	a.update(func(s *AuthState) { s.MyProfile = p })
}

// ReplaceProfiles replaces the directory wholesale.
func (a *AuthSlice) ReplaceProfiles(ps []models.Profile) {
	ps = slices.Clone(ps)
	if ps == nil {
		ps = []models.Profile{}
	}
	a.update(func(s *AuthState) { s.Profiles = ps })
}

// MergeProfile replaces my profile and the directory entry with the same id.
// A profile missing from the directory is not inserted.
func (a *AuthSlice) MergeProfile(p models.Profile) {
	a.update(func(s *AuthState) {
		s.MyProfile = p
		for i := range s.Profiles {
			if s.Profiles[i].ID == p.ID {
				s.Profiles[i] = p
			}
		}
	})
}
