package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/boxkit/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-resolve a document whenever it changes",
		Long: `Watch a layout document and print its resolved frames after every save.

The document's directory is watched so editors that replace files on save
are followed. Decode and validation errors are reported and watching
continues. Press Ctrl+C to stop.

Accepts the same flags as "boxkit resolve".`,
		Usage: "boxkit watch <doc> [--flag name] [--width N] [--height N] [--screen]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	opts, rest, err := parseDocArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: boxkit watch <doc>", err)
	}
	screen := false
	for _, arg := range rest {
		if arg != "--screen" {
			return fmt.Errorf("unknown flag %q", arg)
		}
		screen = true
	}

	target, err := filepath.Abs(opts.path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reload := func() {
		defer errors.Recover("watch.reload")
		s, err := openSession(opts)
		if err != nil {
			reportError("watch", opts.path, err)
			return
		}
		writeTable(newOutput(stdout, s.color()), s, s.resolve(), screen)
		fmt.Fprintln(stdout)
	}

	fmt.Fprintf(stdout, "Watching %s (Ctrl+C to stop)...\n\n", opts.path)
	reload()
	err = watchLoop(ctx, watcher.Events, watcher.Errors, target, reload)
	fmt.Fprintln(stdout, "\nWatch stopped.")
	return err
}

// watchLoop calls reload for every write, create or rename of target until
// ctx is done or the event channel closes. Watcher errors are reported
// and ignored.
func watchLoop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, target string, reload func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload()
			}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			errors.Report(errors.New("watch", errors.KindIO, target, err))
		}
	}
}
