// Package auth drives the interactive sign-in flows and persists the
// resulting session.
package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"boardsync/api"
	"boardsync/session"
)

// Flow runs email-based authentication: request a verification code, prompt
// for it, verify, and store the session.
type Flow struct {
	API      *api.Client
	Sessions *session.Store
	In       io.Reader
	Out      io.Writer
}

// SignIn runs the signup or signin flow for email. kind is api.FlowSignup or
// api.FlowSignin.
func (f *Flow) SignIn(ctx context.Context, kind, email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return errors.New("a valid email address is required")
	}

	var err error
	switch kind {
	case api.FlowSignup:
		err = f.API.Signup(ctx, email)
	case api.FlowSignin:
		err = f.API.Signin(ctx, email)
	default:
		return fmt.Errorf("unknown auth flow %q", kind)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(f.Out, "Enter the code sent to %s: ", email)
	code, err := readLine(f.In)
	if err != nil {
		return err
	}
	if code == "" {
		return errors.New("verification code is required")
	}

	creds, err := f.API.Verify(ctx, kind, email, code)
	if err != nil {
		return err
	}
	if _, err := f.Sessions.Set(creds.Email, creds.AccessToken); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	fmt.Fprintf(f.Out, "Signed in as %s\n", creds.Email)
	return nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
