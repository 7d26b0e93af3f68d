package api

import (
	"context"
	"fmt"
	"net/http"
)

// Auth flow kinds accepted by Verify.
const (
	FlowSignup = "signup"
	FlowSignin = "signin"
)

// Credentials is the session material returned by a successful verification
// or OAuth exchange.
type Credentials struct {
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// Signup starts email-based registration; the server mails a verification
// code.
func (c *Client) Signup(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/signup", body, nil, "signup", "Signup failed")
}

// Signin starts email-based sign-in; the server mails a verification code.
func (c *Client) Signin(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/signin", body, nil, "signin", "Signin failed")
}

// Verify submits the mailed code for the given flow and returns session
// credentials.
func (c *Client) Verify(ctx context.Context, flow, email, code string) (Credentials, error) {
	if flow != FlowSignup && flow != FlowSignin {
		return Credentials{}, &Error{Op: "verify", Message: fmt.Sprintf("unknown auth flow %q", flow)}
	}
	body := map[string]string{"email": email, "verificationCode": code}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/"+flow+"/verify", body, &creds, "verify", "Verification failed"); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// GithubLogin exchanges an OAuth authorization code for session credentials.
func (c *Client) GithubLogin(ctx context.Context, code string) (Credentials, error) {
	body := map[string]string{"code": code}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/github", body, &creds, "github login", "GitHub login failed"); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
