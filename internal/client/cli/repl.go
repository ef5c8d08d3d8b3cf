package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

var errUnknownCommand = errors.New("unknown command")

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Feed(ctx context.Context) error
	Post(ctx context.Context) error
	Comment(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the SNS CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              show available commands
//	  - register          create an account
//	  - login             authenticate
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - help              show available commands
//	  - l | feed          show the feed, newest first
//	  - post              publish a picture
//	  - comment <id>      comment on a post
//	  - like <id>         like or unlike a post
//	  - profile           show my profile
//	  - editprofile       change nickname and picture
//	  - refresh           reload posts, profiles and comments
//	  - logout            log out
//	  - exit | quit       leave the program
//
// Errors returned by command handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sns%s> ", prefixed(statusFn())))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)feed, post, comment <id>, like <id>, profile, editprofile, refresh, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
			continue
		}

		var err error
		if a.isLoggedIn() {
			err = dispatchSignedIn(ctx, a, cmd, args)
		} else {
			err = dispatchSignedOut(ctx, a, cmd)
		}
		switch {
		case errors.Is(err, errUnknownCommand):
			printlnFn("Unknown command:", cmd)
		case err != nil:
			printlnFn("Error:", err)
		}
	}
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

func dispatchSignedOut(ctx context.Context, a execIface, cmd string) error {
	switch cmd {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	default:
		return errUnknownCommand
	}
}

func dispatchSignedIn(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "l", "feed":
		return a.Feed(ctx)
	case "post":
		return a.Post(ctx)
	case "comment":
		return a.Comment(ctx, args)
	case "like":
		return a.Like(ctx, args)
	case "profile":
		return a.Profile(ctx)
	case "editprofile":
		return a.EditProfile(ctx)
	case "refresh":
		return a.Refresh(ctx)
	case "logout":
		return a.Logout(ctx)
	default:
		return errUnknownCommand
	}
}
