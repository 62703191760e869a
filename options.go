package lineclip

import "log/slog"

// ClipperOption configures a Clipper during creation.
//
// Example:
//
//	c, err := lineclip.NewClipper(w,
//	    lineclip.WithLogger(logger),
//	    lineclip.WithStepHook(func(s lineclip.Step) { fmt.Println(s) }),
//	)
type ClipperOption func(*clipperOptions)

// clipperOptions holds optional configuration for Clipper creation.
type clipperOptions struct {
	logger *slog.Logger
	onStep func(Step)
}

// defaultOptions returns the default clipper options.
func defaultOptions() clipperOptions {
	return clipperOptions{
		logger: nil, // Falls back to the package Logger at call time
		onStep: nil,
	}
}

// WithLogger sets a logger for one Clipper, overriding the package logger
// set with SetLogger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) ClipperOption {
	return func(o *clipperOptions) {
		o.logger = l
	}
}

// WithStepHook registers fn to be called after every endpoint replacement
// of the clip loop, in order. fn runs synchronously on the caller's
// goroutine and must not retain the Clipper across goroutines unless it is
// itself safe for concurrent use.
func WithStepHook(fn func(Step)) ClipperOption {
	return func(o *clipperOptions) {
		o.onStep = fn
	}
}
