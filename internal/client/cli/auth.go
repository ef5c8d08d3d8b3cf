package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// readCredentials prompts for an email and a password. The password bytes
// read from the terminal are wiped before returning.
func (a *App) readCredentials() (models.Credentials, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return models.Credentials{}, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	defer common.WipeByteArray(password)

	return models.Credentials{Email: email, Password: string(password)}, nil
}

// Register switches from the sign-in to the sign-up flow, reads
// credentials and runs the registration workflow.
func (a *App) Register(ctx context.Context) error {
	a.authSlice.HideSignIn()
	a.authSlice.ShowSignUp()

	creds, err := a.readCredentials()
	if err != nil {
		a.authSlice.HideSignUp()
		a.authSlice.ShowSignIn()
		return err
	}

	r := a.flows.Register(ctx, creds)
	a.printReport(r)
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Welcome, %s!\n", a.authSlice.Snapshot().MyProfile.NickName)
	} else {
		a.authSlice.ShowSignIn()
	}
	return nil
}

// Login reads credentials and runs the login workflow.
func (a *App) Login(ctx context.Context) error {
	creds, err := a.readCredentials()
	if err != nil {
		return err
	}

	a.printReport(a.flows.Login(ctx, creds))
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.authSlice.Snapshot().MyProfile.NickName)
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.printReport(a.flows.Logout(ctx))
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
