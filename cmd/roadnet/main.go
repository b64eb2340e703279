// Command roadnet loads a road list and answers connectivity and
// shortest-distance questions about it.
//
//	roadnet show roads.txt
//	roadnet distance roads.txt Harbour University
//	roadnet watch roads.txt
//
// Settings can come from flags, the environment, or a .env file in the
// working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/roadnet/matrix"
	"github.com/katalvlaran/roadnet/network"
	"github.com/katalvlaran/roadnet/render"
)

type GlobalFlags struct {
	SearchDirs []string `help:"Directories to try when FILE does not exist as given." env:"ROADNET_SEARCH_DIRS" default:"Tests" sep:","`
	LogLevel   string   `help:"Log level." env:"ROADNET_LOG_LEVEL" enum:"debug,info,warn,error" default:"warn"`
	Format     string   `help:"Matrix output format." env:"ROADNET_FORMAT" enum:"table,yaml" default:"table"`
}

// Logger builds the stderr logger for the configured level.
func (g GlobalFlags) Logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(g.LogLevel))); err != nil {
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Network returns an empty network configured from the flags.
func (g GlobalFlags) Network() *network.Network {
	return network.New(
		network.WithLogger(g.Logger()),
		network.WithSearchDirs(g.SearchDirs...),
	)
}

// Load returns a network loaded from path.
func (g GlobalFlags) Load(path string) (*network.Network, error) {
	n := g.Network()
	if err := n.Load(path); err != nil {
		return nil, err
	}

	return n, nil
}

// Render writes m, indexed by the network's vertices, in the configured format.
func (g GlobalFlags) Render(out io.Writer, n *network.Network, m *matrix.Dense) error {
	if g.Format == "yaml" {
		return render.YAML(out, n.Vertices(), m)
	}

	return render.Table(out, n.Vertices(), m)
}

type CLI struct {
	GlobalFlags

	Show      ShowCommand      `cmd:"show" help:"Print the direct distance matrix."`
	All       AllCommand       `cmd:"all" help:"Print shortest distances between every pair of intersections."`
	Connected ConnectedCommand `cmd:"connected" help:"Report whether every intersection can reach every other."`
	Distance  DistanceCommand  `cmd:"distance" help:"Print the shortest distance between two intersections (-1 unknown, 0 unreachable)."`
	Route     RouteCommand     `cmd:"route" help:"Print one shortest route between two intersections."`
	Watch     WatchCommand     `cmd:"watch" help:"Reload and summarise the network whenever FILE changes."`
}

// run parses args and executes the selected command, writing results to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("roadnet"),
		kong.Description("Transportation network queries over a source,target,weight road list."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(out, (*io.Writer)(nil)),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kctx.Run(cli.GlobalFlags)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
