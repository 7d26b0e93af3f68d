package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boardsync/api"
	"boardsync/auth"
	"boardsync/session"
)

func runLogin(cmd *cobra.Command, args []string) error {
	if sess, ok := current.sessions.Current(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Already signed in as %s\n", sess.Email)
		return nil
	}

	if githubFlag {
		return auth.SignInWithGithub(cmd.Context(), current.api, current.sessions,
			current.cfg.githubClientID, current.cfg.githubCallback, cmd.OutOrStdout())
	}

	if len(args) != 1 {
		return fmt.Errorf("an email address is required (or pass --github)")
	}
	kind := api.FlowSignin
	if signupFlag {
		kind = api.FlowSignup
	}
	flow := &auth.Flow{
		API:      current.api,
		Sessions: current.sessions,
		In:       os.Stdin,
		Out:      cmd.OutOrStdout(),
	}
	return flow.SignIn(cmd.Context(), kind, args[0])
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := current.sessions.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	sess, err := current.requireSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sess.Email)
	fmt.Fprintf(out, "session expires %s\n", sess.ExpiresAt.Format("2006-01-02 15:04"))

	if claims, err := session.InspectToken(sess.AccessToken); err == nil {
		if claims.Subject != "" {
			fmt.Fprintf(out, "token subject %s\n", claims.Subject)
		}
		if !claims.ExpiresAt.IsZero() {
			fmt.Fprintf(out, "token expires %s\n", claims.ExpiresAt.Format("2006-01-02 15:04"))
		}
	}
	if current.verifier != nil {
		if _, err := current.verifier.Verify(sess.AccessToken); err != nil {
			return fmt.Errorf("token verification failed: %w", err)
		}
		fmt.Fprintln(out, "token signature verified")
	}
	return nil
}
