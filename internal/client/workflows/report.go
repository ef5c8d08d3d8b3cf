package workflows

import (
	"errors"
	"fmt"
)

// Step names recorded in a Report.
const (
	StepValidate      = "validate"
	StepLoadSession   = "session/load"
	StepClearSession  = "session/clear"
	StepLookupPost    = "posts/lookup"
	StepLogin         = "auth/login"
	StepRegister      = "auth/register"
	StepCreateProfile = "profile/create"
	StepUpdateProfile = "profile/update"
	StepMyProfile     = "profile/fetchMine"
	StepProfiles      = "profile/fetchAll"
	StepPosts         = "posts/fetch"
	StepCreatePost    = "posts/create"
	StepToggleLike    = "posts/toggleLiked"
	StepComments      = "comments/fetch"
	StepCreateComment = "comments/create"
)

type Step struct {
	Name string
	Err  error
}

// Report lists the steps a workflow attempted, in order.
type Report struct {
	Steps []Step
}

func (r *Report) record(name string, err error) {
	r.Steps = append(r.Steps, Step{Name: name, Err: err})
}

func (r Report) OK() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return false
		}
	}
	return true
}

// Err joins every failed step, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, s := range r.Steps {
		if s.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, s.Err))
		}
	}
	return errors.Join(errs...)
}

func (r Report) Failed(name string) bool {
	for _, s := range r.Steps {
		if s.Name == name && s.Err != nil {
			return true
		}
	}
	return false
}

// Ran reports whether the step was attempted.
func (r Report) Ran(name string) bool {
	for _, s := range r.Steps {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Names returns the attempted step names in order.
func (r Report) Names() []string {
	out := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		out = append(out, s.Name)
	}
	return out
}
