package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/leaguefeed/internal/client/client"
	"github.com/dmitrijs2005/leaguefeed/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and stores the api key the
// server hands back. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			fmt.Fprintln(a.out, "Login unsuccessful: wrong credentials")
		case errors.Is(err, client.ErrUnavailable):
			fmt.Fprintln(a.out, "Login unsuccessful: server unavailable")
		default:
			fmt.Fprintln(a.out, "Login unsuccessful")
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.setLoggedIn(true)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout overwrites the stored api key with an empty one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.setLoggedIn(false)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
