package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boardsync/domain"
)

func TestDoAttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, func() string { return "tok-1" })
	if _, err := c.Boards(context.Background()); err != nil {
		t.Fatalf("boards: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
}

func TestDoOmitsBearerWhenSignedOut(t *testing.T) {
	var gotAuth string
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, func() string { return "" })
	if _, err := c.Boards(context.Background()); err != nil {
		t.Fatalf("boards: %v", err)
	}
	if present || gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestDoParsesServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"board name taken"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, nil)
	_, err := c.CreateBoard(context.Background(), BoardPayload{Name: "Sprint 1"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "board name taken" || apiErr.Status != http.StatusConflict {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestDoFallsBackOnUnparseableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>boom</html>`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, nil)
	_, err := c.CreateBoard(context.Background(), BoardPayload{Name: "Sprint 1"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Create board failed" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestDoTransportFailureIsErrorResult(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	c.HTTP = &http.Client{Timeout: 200 * time.Millisecond}
	_, err := c.Boards(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "Fetch boards failed" || apiErr.Err == nil {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestDoCancelledContextReturnsCtxError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	c := New(srv.URL, nil)
	_, err := c.Boards(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestVerifySendsCodeAndReturnsCredentials(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"email":"a@x.com","accessToken":"tok"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, nil)
	creds, err := c.Verify(context.Background(), FlowSignin, "a@x.com", "123456")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if gotPath != "/auth/signin/verify" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotBody["email"] != "a@x.com" || gotBody["verificationCode"] != "123456" {
		t.Fatalf("unexpected body: %v", gotBody)
	}
	if creds.Email != "a@x.com" || creds.AccessToken != "tok" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestVerifyRejectsUnknownFlow(t *testing.T) {
	c := New("http://unused", nil)
	if _, err := c.Verify(context.Background(), "oauth", "a@x.com", "1"); err == nil {
		t.Fatal("expected error for unknown flow")
	}
}

func TestInviteMemberGeneratesPendingInvite(t *testing.T) {
	var gotPath string
	var gotBody domain.Invite
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, nil)
	invite, err := c.InviteMember(context.Background(), "b1", "b@x.com")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if gotPath != "/boards/b1/invite" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotBody.InviteID == "" || gotBody.InviteID != invite.InviteID {
		t.Fatalf("invite id not generated/propagated: %+v", gotBody)
	}
	if gotBody.Status != domain.InvitePending {
		t.Fatalf("unexpected status: %q", gotBody.Status)
	}
	if gotBody.MemberID != "b@x.com" || gotBody.EmailMember != "b@x.com" {
		t.Fatalf("unexpected member fields: %+v", gotBody)
	}
}

func TestRespondInviteValidatesStatus(t *testing.T) {
	c := New("http://unused", nil)
	err := c.RespondInvite(context.Background(), "b1", "i1", "maybe", "")
	if err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestAssignFailureIsErrorResultNotPanic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"not a member"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, nil)
	err := c.AssignMember(context.Background(), "b1", "c1", "t1", "m1")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != "not a member" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestDeleteBoardSendsNoBodyAndAcceptsEmptyResponse(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, nil)
	if err := c.DeleteBoard(context.Background(), "b1"); err != nil {
		t.Fatalf("delete board: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("unexpected method: %s", gotMethod)
	}
}
