// Command lineclip clips line segments against a rectangular window and
// reports, and optionally draws, the visible parts.
//
//	lineclip -window 1,1,10,10 -segment 5,5,15,15 -segment 20,20,30,30 -png out.png
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/lineclip"
	"github.com/gogpu/lineclip/internal/plot"
)

// Exit codes.
const (
	exitOK          = 0
	exitConfig      = 1
	exitClipFailure = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdout, stderr io.Writer, lookup lookupFunc) int {
	cfg, err := parseConfig(args, stderr, lookup)
	if errors.Is(err, errUsage) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "lineclip: %v\n", err)
		return exitConfig
	}

	if cfg.verbose {
		lineclip.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer lineclip.SetLogger(nil)
	}

	rep := newReporter(stdout, cfg.lang, useColor(cfg.color, stdout))

	var opts []lineclip.ClipperOption
	if cfg.trace {
		opts = append(opts, lineclip.WithStepHook(rep.step))
	}
	clipper, err := lineclip.NewClipper(cfg.window, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "lineclip: %v\n", err)
		return exitConfig
	}

	rep.window(cfg.window)
	scene := plot.Scene{World: cfg.window}
	code := exitOK
	for i, seg := range cfg.segments {
		res, err := clipper.Clip(seg)
		rep.result(i+1, seg, res, err)
		if err != nil {
			code = exitClipFailure
		}
		scene.Items = append(scene.Items, plot.Item{Input: seg, Result: res})
	}

	if cfg.pngPath != "" {
		if err := renderScene(&scene, cfg.size, cfg.pngPath); err != nil {
			fmt.Fprintf(stderr, "lineclip: %v\n", err)
			return exitConfig
		}
		fmt.Fprintf(stderr, "lineclip: picture saved to %s (%dx%d)\n", cfg.pngPath, cfg.size, cfg.size)
	}
	return code
}

func renderScene(s *plot.Scene, size int, path string) error {
	c, err := plot.NewCanvas(size, size)
	if err != nil {
		return err
	}
	if err := s.Render(c, float64(size)/20); err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// useColor decides whether to emit ANSI colors on w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
