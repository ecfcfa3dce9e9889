package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/projecthub/internal/client/client"
	"github.com/dmitrijs2005/projecthub/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	token    string
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	return newApp(c, client.NewHTTPClient(c.ServerURL, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config: c,
		api:    api,
		token:  c.Token,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) getStatus() string {
	switch {
	case a.userName != "":
		return "(" + a.userName + ")"
	case a.isLoggedIn():
		return "(token)"
	}
	return ""
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("projecthub CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
