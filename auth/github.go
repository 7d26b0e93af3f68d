package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"boardsync/api"
	"boardsync/session"
)

// DefaultCallbackAddr is the loopback address the GitHub OAuth redirect
// lands on. The port must match the OAuth app's registered redirect URI.
const DefaultCallbackAddr = "127.0.0.1:8910"

const callbackPath = "/github-callback"

// AuthorizeURL builds the GitHub authorization URL the user opens in a
// browser.
func AuthorizeURL(clientID, redirectURL string) string {
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("redirect_uri", redirectURL)
	return "https://github.com/login/oauth/authorize?" + q.Encode()
}

// CallbackServer is a short-lived loopback HTTP server that receives the
// OAuth redirect carrying the authorization code.
type CallbackServer struct {
	e    *echo.Echo
	addr net.Addr
	code chan string
}

// NewCallbackServer starts listening on addr ("" for the default).
func NewCallbackServer(addr string) (*CallbackServer, error) {
	if addr == "" {
		addr = DefaultCallbackAddr
	}
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &CallbackServer{e: echo.New(), addr: l.Addr(), code: make(chan string, 1)}
	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Listener = l
	s.e.GET(callbackPath, func(c echo.Context) error {
		code := c.QueryParam("code")
		if code == "" {
			return c.String(http.StatusBadRequest, "missing code parameter")
		}
		select {
		case s.code <- code:
		default:
		}
		return c.HTML(http.StatusOK, "<html><body>Signed in. You can close this window.</body></html>")
	})

	go func() {
		if err := s.e.Start(""); err != nil && err != http.ErrServerClosed {
			s.e.Logger.Error(err)
		}
	}()
	return s, nil
}

// RedirectURL returns the redirect URI the OAuth app must be registered
// with.
func (s *CallbackServer) RedirectURL() string {
	return "http://" + s.addr.String() + callbackPath
}

// WaitCode blocks until the redirect delivers an authorization code or ctx
// ends.
func (s *CallbackServer) WaitCode(ctx context.Context) (string, error) {
	select {
	case code := <-s.code:
		return code, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close shuts the loopback server down.
func (s *CallbackServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.e.Shutdown(ctx)
}

// SignInWithGithub runs the browser OAuth flow: start the loopback server,
// show the authorization URL, wait for the redirect, exchange the code for
// credentials, and persist the session.
func SignInWithGithub(ctx context.Context, client *api.Client, sessions *session.Store, clientID, listenAddr string, out io.Writer) error {
	if clientID == "" {
		return errors.New("github client id is required")
	}

	srv, err := NewCallbackServer(listenAddr)
	if err != nil {
		return fmt.Errorf("start callback server: %w", err)
	}
	defer srv.Close()

	fmt.Fprintf(out, "Open this URL in your browser to sign in:\n\n  %s\n\nWaiting for GitHub...\n", AuthorizeURL(clientID, srv.RedirectURL()))

	code, err := srv.WaitCode(ctx)
	if err != nil {
		return err
	}

	creds, err := client.GithubLogin(ctx, code)
	if err != nil {
		return err
	}
	if _, err := sessions.Set(creds.Email, creds.AccessToken); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	fmt.Fprintf(out, "Signed in as %s\n", creds.Email)
	return nil
}
