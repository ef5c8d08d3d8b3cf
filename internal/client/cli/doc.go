// Package cli provides the interactive SNS command-line client.
//
// It wires configuration, the local session store, the HTTP API client, the
// state slices and the workflows, then runs a REPL that plays the part of the
// web front end. Typical flow: restore the stored session, prompt for login
// or registration when there is none, then browse the feed, post, comment and
// like.
//
// Key features:
//   - Register / Login / Logout
//   - Feed rendering, newest first, with authors, comments and likes
//   - Post a picture, comment, toggle a like
//   - Show and edit my profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
