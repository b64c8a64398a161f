package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/geoattend/internal/client/client"
	"github.com/dmitrijs2005/geoattend/internal/client/config"
	"github.com/dmitrijs2005/geoattend/internal/netx"
)

type App struct {
	config   *config.Config
	client   client.Client
	reader   *bufio.Reader
	out      io.Writer
	loggedIn bool

	download func(ctx context.Context, url string) ([]byte, error)
}

func NewApp(cfg *config.Config) (*App, error) {
	c, err := client.NewGRPCClient(cfg.ServerEndpointAddr, cfg.Token)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, c, os.Stdin, os.Stdout), nil
}

func newApp(cfg *config.Config, c client.Client, in io.Reader, out io.Writer) *App {
	return &App{
		config:   cfg,
		client:   c,
		reader:   bufio.NewReader(in),
		out:      out,
		loggedIn: cfg.Token != "",
		download: netx.DownloadPresigned,
	}
}

// Run executes args as a single command, or starts the interactive loop
// when args is empty. The connection is closed on return.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) > 0 {
		return a.exec(ctx, args[0], args[1:])
	}
	a.runREPL(ctx)
	return nil
}

func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
