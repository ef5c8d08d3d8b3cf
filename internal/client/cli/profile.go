package cli

import (
	"context"
	"fmt"
)

// Profile prints my profile and the signed-in email.
func (a *App) Profile(_ context.Context) error {
	me := a.authSlice.Snapshot().MyProfile

	fmt.Fprintf(a.out, "Nickname: %s\n", me.NickName)
	fmt.Fprintf(a.out, "Email:    %s\n", a.identity.Email())
	fmt.Fprintf(a.out, "User ID:  %d\n", me.UserProfile)
	if me.CreatedOn != "" {
		fmt.Fprintf(a.out, "Joined:   %s\n", me.CreatedOn)
	}
	if me.Img != "" {
		fmt.Fprintf(a.out, "Picture:  %s\n", me.Img)
	}
	return nil
}

// EditProfile opens the profile editor. The nickname is edited locally
// first, then sent together with an optional new picture.
func (a *App) EditProfile(ctx context.Context) error {
	a.authSlice.ShowProfileEditor()
	current := a.authSlice.Snapshot().MyProfile.NickName

	nick, err := getSimpleText(a.reader, fmt.Sprintf("Enter nickname (empty keeps %q)", current), a.out)
	if err != nil {
		a.authSlice.HideProfileEditor()
		return err
	}
	img, err := a.promptImage("Enter image path (empty keeps current)")
	if err != nil {
		a.authSlice.HideProfileEditor()
		return err
	}

	if nick != "" {
		a.authSlice.SetNickname(nick)
	}

	r := a.flows.UpdateProfile(ctx, img)
	a.printReport(r)
	if r.OK() {
		fmt.Fprintln(a.out, "Profile updated")
	}
	return nil
}

// Refresh reloads posts, profiles and comments.
func (a *App) Refresh(ctx context.Context) error {
	a.printReport(a.flows.Refresh(ctx))
	return nil
}
