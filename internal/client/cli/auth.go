package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type credentialsCall func(ctx context.Context, email string, password []byte) (models.User, error)

// Register prompts for an email and password and creates an account. The
// new account is logged in right away.
func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, "Registration", a.authService.Register)
}

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, "Login", a.authService.Login)
}

func (a *App) authenticate(ctx context.Context, what string, call credentialsCall) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := call(ctx, email, password)
	if err != nil {
		if client.IsUnavailable(err) {
			fmt.Fprintf(a.out, "%s failed: server unavailable\n", what)
		} else {
			fmt.Fprintf(a.out, "%s failed: %s\n", what, a.authService.Error())
		}
		return err
	}

	name := user.Email()
	if name == "" {
		name = email
	}
	fmt.Fprintf(a.out, "%s successful. Welcome, %s!\n", what, name)
	return nil
}

// Logout drops the session locally.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
