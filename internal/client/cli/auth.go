package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and authenticates against the store. The
// previously remembered username prefills the prompt.
func (a *App) Login(ctx context.Context) error {
	remembered := a.auth.RememberedUsername(ctx)

	username, err := GetTextWithDefault(a.reader, "Enter username", remembered, a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	remember, err := GetYesNo(a.reader, "Remember username?", remembered != "", a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, username, password, remember)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	a.session = sess
	a.listView.Reset()
	fmt.Fprintf(a.out, "Logged in as %s\n", sess.Username)
	return nil
}

// Signup prompts for account details and creates the account. The email
// doubles as the login username.
func (a *App) Signup(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Enter password (at least 6 characters)")
	if err != nil {
		return err
	}

	sess, err := a.auth.Signup(ctx, name, email, password)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}

	a.session = sess
	a.listView.Reset()
	fmt.Fprintf(a.out, "Account created. Logged in as %s\n", sess.Username)
	return nil
}

// Logout clears the stored session. The remembered username survives for
// the next login prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return err
	}
	a.session = nil
	a.listView.Reset()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami reports the current session.
func (a *App) Whoami(ctx context.Context) error {
	if a.session == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %s)\n", a.session.Username, a.session.ID)
	return nil
}
