package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// readSecret reads a password without echo from a terminal, or as a plain
// line when stdin is piped.
func (a *App) readSecret() ([]byte, error) {
	if !isTerminal(int(os.Stdin.Fd())) {
		s, err := getSimpleText(a.reader, "Enter password", a.out)
		return []byte(s), err
	}
	return getPassword(a.out)
}

// Register prompts for username, email and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret()
	if err != nil {
		return err
	}
	defer wipe(password)

	msg, err := a.api.Register(ctx, username, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// Login prompts for credentials and keeps the session for later commands.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret()
	if err != nil {
		return err
	}
	defer wipe(password)

	res, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}

	a.user = &res.User
	a.tasks = nil
	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Logged in as %s\n", res.User.Username)
	return nil
}

// Logout ends the session locally and on the server.
func (a *App) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	a.user = nil
	a.tasks = nil
	if err != nil && !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// sessionLost drops local session state after the server rejected the
// token (expired or revoked).
func (a *App) sessionLost(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		_ = a.api.Logout(context.Background())
		a.user = nil
		a.tasks = nil
		return errors.New("session expired, please log in again")
	}
	return err
}
