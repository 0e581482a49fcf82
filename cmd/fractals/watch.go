package main

import (
	"fmt"
	"hash/crc64"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/fractals"
	"github.com/scottkirkwood/fractals/config"
	"github.com/scottkirkwood/fractals/project"
	"github.com/scottkirkwood/fractals/render"
)

func watchCmd(a *app) *cobra.Command {
	var (
		out    string
		format string
		frames int
		seed   string
	)

	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Re-export every project JSON written to DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			s, err := fractals.Init(seed)
			if err != nil {
				return fmt.Errorf("--seed %q: %w", seed, err)
			}
			if out == "" {
				out = a.cfg.OutputDir
			}
			pw := &projectWatcher{
				cfg:    a.cfg,
				seed:   s,
				out:    out,
				format: format,
				frames: frames,
				w:      cmd.OutOrStdout(),
				crc:    make(map[string]uint64),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("failed to create watcher: %w", err)
			}
			defer watcher.Close()

			// fsnotify watches a single directory, not the tree below it.
			if err := watcher.Add(args[0]); err != nil {
				return fmt.Errorf("watch %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Monitoring folder %q\n", args[0])

			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
						pw.handle(event.Name)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fractals.Logger().Warn("watcher error", "err", err)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output folder (default output_dir from the config)")
	cmd.Flags().StringVar(&format, "format", "png", "png, bmp, tiff, svg or pdf")
	cmd.Flags().IntVar(&frames, "frames", 50, "frames the fern accumulates before export")
	cmd.Flags().StringVar(&seed, "seed", "", "hex seed of the fern random source")
	return cmd
}

// projectWatcher renders project files as they change.
type projectWatcher struct {
	cfg    config.Config
	seed   fractals.Seed
	out    string
	format string
	frames int
	w      io.Writer
	crc    map[string]uint64
}

// handle renders fname if it is a project file whose contents changed. Bad
// projects are reported and skipped.
func (pw *projectWatcher) handle(fname string) {
	if !strings.HasSuffix(strings.ToLower(fname), ".json") || !pw.changed(fname) {
		return
	}
	saved, err := pw.render(fname)
	if err != nil {
		fmt.Fprintf(pw.w, "Skipping %s: %v\n", fname, err)
		return
	}
	fmt.Fprintf(pw.w, "Saved to %s\n", saved)
}

func (pw *projectWatcher) render(fname string) (string, error) {
	doc, err := project.LoadFile(fname)
	if err != nil {
		return "", err
	}
	d, err := render.New(pw.cfg, render.WithSeed(pw.seed))
	if err != nil {
		return "", err
	}
	if err := d.Load(doc); err != nil {
		return "", err
	}
	// Load already drew one frame.
	return renderAndExport(d, pw.out, pw.format, pw.frames-1)
}

var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

// changed reports whether the contents of fname differ from the last call.
func (pw *projectWatcher) changed(fname string) bool {
	if onlyDigitsRx.MatchString(filepath.Base(fname)) {
		// Ignore temp files by vim which have only digits
		return false
	}
	checksum, err := fileChecksum(fname)
	if err != nil {
		fractals.Logger().Debug("checksum failed", "path", fname, "err", err)
		return false
	}
	if old, ok := pw.crc[fname]; ok && old == checksum {
		return false
	}
	pw.crc[fname] = checksum
	return true
}

var crcTable = crc64.MakeTable(crc64.ECMA)

func fileChecksum(fname string) (uint64, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return 0, err
	}
	return crc64.Checksum(b, crcTable), nil
}
