package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/projecthub/internal/client/client"
)

func (a *App) Create(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.fail(errNotLoggedIn)
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return a.fail(err)
	}
	description, err := GetSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return a.fail(err)
	}

	p, err := a.api.CreateProject(ctx, a.token, title, description)
	if err != nil {
		return a.fail(a.sessionError(err))
	}

	printProject(p)
	return nil
}

func (a *App) Get(ctx context.Context, rawID string) error {
	if !a.isLoggedIn() {
		return a.fail(errNotLoggedIn)
	}
	id, err := parseID(rawID)
	if err != nil {
		return a.fail(err)
	}

	p, err := a.api.GetProject(ctx, a.token, id)
	if err != nil {
		return a.fail(a.sessionError(err))
	}

	printProject(p)
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	if !a.isLoggedIn() {
		return a.fail(errNotLoggedIn)
	}
	id, err := parseID(rawID)
	if err != nil {
		return a.fail(err)
	}

	if err := a.api.DeleteProject(ctx, a.token, id); err != nil {
		return a.fail(a.sessionError(err))
	}

	printlnFn(fmt.Sprintf("Project %d deleted", id))
	return nil
}

// sessionError drops the stored token once the server stops accepting it.
func (a *App) sessionError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		a.token = ""
		a.userName = ""
		return fmt.Errorf("session is no longer valid, please log in again: %w", err)
	}
	return err
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid project id %q", raw)
	}
	return id, nil
}

func printProject(p *client.Project) {
	printlnFn(fmt.Sprintf("#%d %s (owner %d)", p.ID, p.Title, p.OwnerID))
	if p.Description != "" {
		printlnFn(p.Description)
	}
}
