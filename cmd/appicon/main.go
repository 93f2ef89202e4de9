// Command appicon writes app_icon.ico, the application icon, next to the
// executable.
//
// Under "go run" the executable lives in a temporary build directory that
// is removed on exit, so pass -o to keep the icon:
//
//	go run ./cmd/appicon -o app_icon.ico
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lmittmann/tint"

	"github.com/gogpu/appicon"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("appicon: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("appicon", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output  = fs.String("o", "", "output file (default: app_icon.ico beside the executable; set it under go run)")
		verbose = fs.Bool("v", false, "log font resolution, layout and output size to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		opts   []appicon.Option
		logger *slog.Logger
	)
	if *verbose {
		logger = slog.New(tint.NewHandler(stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
		opts = append(opts, appicon.WithLogger(logger))
	}
	g := appicon.New(opts...)

	path := *output
	if path == "" {
		var err error
		path, err = appicon.OutputPath(g.Config().Filename)
		if err != nil {
			return err
		}
	}

	written, err := g.WriteFile(path)
	if err != nil {
		return err
	}

	if logger != nil {
		if fi, err := os.Stat(written); err == nil {
			logger.Info("output size",
				"path", written,
				"size", humanize.Bytes(uint64(fi.Size())), //nolint:gosec // file sizes are non-negative
				"bytes", humanize.Comma(fi.Size()),
			)
		}
	}

	fmt.Fprintf(stdout, "Icon created successfully: %s\n", written)
	return nil
}
