package cli

import (
	"context"
	"errors"
	"fmt"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.fail(err)
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	reg, err := a.api.Register(ctx, userName, email, password)
	if err != nil {
		return a.fail(fmt.Errorf("registration failed: %w", err))
	}

	a.token = reg.AccessToken
	a.userName = reg.User.Username
	printlnFn(fmt.Sprintf("Registered %s (id %d)", reg.User.Username, reg.User.ID))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}

	token, err := a.api.Login(ctx, userName, password)
	if err != nil {
		return a.fail(fmt.Errorf("login failed: %w", err))
	}

	a.token = token
	a.userName = userName
	printlnFn("Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.token = ""
	a.userName = ""
	printlnFn("Logged out")
	return nil
}

func (a *App) Health(ctx context.Context) error {
	if err := a.api.Health(ctx); err != nil {
		return a.fail(err)
	}
	printlnFn("Server is up")
	return nil
}

func (a *App) fail(err error) error {
	printlnFn("Error:", err)
	return err
}
