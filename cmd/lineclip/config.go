package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/gogpu/lineclip"
)

// Environment variables read when the matching flag is absent.
const (
	envWindow   = "LINECLIP_WINDOW"
	envSegments = "LINECLIP_SEGMENTS"
	envPNG      = "LINECLIP_PNG"
)

// Defaults reproduce the classic demo: a (1,1)-(10,10) window and one
// segment leaving it through the top right corner.
const (
	defaultWindow  = "1,1,10,10"
	defaultSegment = "5,5,15,15"
)

var errUsage = errors.New("usage")

type config struct {
	window   lineclip.Window
	segments []lineclip.Segment
	pngPath  string
	size     int
	trace    bool
	verbose  bool
	lang     language.Tag
	color    string
}

// segmentList collects repeated -segment flags.
type segmentList []string

func (s *segmentList) String() string { return strings.Join(*s, ";") }

func (s *segmentList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(string) (string, bool)

// parseConfig resolves settings with precedence flag, process environment,
// env file, built-in default.
func parseConfig(args []string, stderr io.Writer, lookup lookupFunc) (*config, error) {
	fs := flag.NewFlagSet("lineclip", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		segs    segmentList
		window  = fs.String("window", "", "clip window `xmin,ymin,xmax,ymax` (env "+envWindow+")")
		pngPath = fs.String("png", "", "write a picture of the result to `file` (env "+envPNG+")")
		size    = fs.Int("size", 512, "picture size in pixels")
		trace   = fs.Bool("trace", false, "print every boundary step")
		verbose = fs.Bool("v", false, "debug logging to stderr")
		lang    = fs.String("lang", "en", "BCP 47 `tag` used to format numbers")
		envFile = fs.String("env", "", "load defaults from a dotenv `file`")
		color   = fs.String("color", "auto", "colorize output: auto, always or never")
	)
	fs.Var(&segs, "segment", "segment `x1,y1,x2,y2` to clip; repeatable (env "+envSegments+", ';' separated)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errUsage
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fileEnv := map[string]string{}
	if *envFile != "" {
		m, err := godotenv.Read(*envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		fileEnv = m
	}
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		if v, ok := fileEnv[key]; ok && v != "" {
			return v
		}
		return def
	}

	cfg := &config{
		pngPath: *pngPath,
		size:    *size,
		trace:   *trace,
		verbose: *verbose,
		color:   *color,
	}
	if cfg.pngPath == "" {
		cfg.pngPath = get(envPNG, "")
	}

	switch cfg.color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid -color %q", cfg.color)
	}
	if cfg.size < 16 {
		return nil, fmt.Errorf("invalid -size %d: need at least 16", cfg.size)
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return nil, fmt.Errorf("invalid -lang %q: %w", *lang, err)
	}
	cfg.lang = tag

	ws := *window
	if ws == "" {
		ws = get(envWindow, defaultWindow)
	}
	if cfg.window, err = parseWindow(ws); err != nil {
		return nil, err
	}

	if len(segs) == 0 {
		for _, s := range strings.Split(get(envSegments, defaultSegment), ";") {
			if s = strings.TrimSpace(s); s != "" {
				segs = append(segs, s)
			}
		}
	}
	for _, s := range segs {
		seg, err := parseSegment(s)
		if err != nil {
			return nil, err
		}
		cfg.segments = append(cfg.segments, seg)
	}
	if len(cfg.segments) == 0 {
		return nil, errors.New("no segments to clip")
	}

	return cfg, nil
}

func parseWindow(s string) (lineclip.Window, error) {
	v, err := parseQuad(s)
	if err != nil {
		return lineclip.Window{}, fmt.Errorf("window %q: %w", s, err)
	}
	w, err := lineclip.NewWindow(v[0], v[1], v[2], v[3])
	if err != nil {
		return lineclip.Window{}, fmt.Errorf("window %q: %w", s, err)
	}
	return w, nil
}

func parseSegment(s string) (lineclip.Segment, error) {
	v, err := parseQuad(s)
	if err != nil {
		return lineclip.Segment{}, fmt.Errorf("segment %q: %w", s, err)
	}
	return lineclip.Seg(v[0], v[1], v[2], v[3]), nil
}

// parseQuad parses four comma-separated numbers.
func parseQuad(s string) ([4]float64, error) {
	var v [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != len(v) {
		return v, fmt.Errorf("want 4 comma-separated numbers, got %d", len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
