package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/roadnet/edgelist"
	"github.com/katalvlaran/roadnet/network"
)

type WatchCommand struct {
	File string `arg:"" help:"Road list (source,target,weight per line)."`
}

// Run loads File, prints a summary, and repeats on every write until ctx is done.
// A failed reload is reported and leaves the network empty until the next
// successful one.
func (c *WatchCommand) Run(ctx context.Context, g GlobalFlags, out io.Writer) error {
	path, err := edgelist.Resolve(c.File, g.SearchDirs...)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer w.Close()
	if err = w.Add(path); err != nil {
		return fmt.Errorf("watcher add %s: %w", path, err)
	}

	n := g.Network()
	reload := func() { summarise(out, n, n.Load(path)) }
	reload()

	return watchLoop(ctx, w.Events, w.Errors, g.Logger(), reload)
}

// watchLoop calls reload for every write or create event until ctx is done
// or the event channel closes.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, log *slog.Logger, reload func()) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				log.Debug("road list changed", "file", ev.Name, "op", ev.Op.String())
				reload()
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "err", err)
		case <-ctx.Done():
			return nil
		}
	}
}

// summarise prints one line describing the outcome of a load.
func summarise(out io.Writer, n *network.Network, loadErr error) {
	if loadErr != nil {
		fmt.Fprintf(out, "load failed: %v\n", loadErr)
		return
	}
	fmt.Fprintf(out, "%d intersections, %d roads, strongly connected: %t\n",
		len(n.Vertices()), n.Roads(), n.IsStronglyConnected())
}
