package appicon

import (
	"log/slog"

	"github.com/gogpu/appicon/text"
)

// FontResolver returns the face used to draw text at a point size.
// Implementations must not fail; *text.Resolver falls back to a built-in
// face.
type FontResolver interface {
	Resolve(size float64) *text.Face
}

// Option configures a Generator during creation.
//
// Example:
//
//	// Application icon defaults
//	g := appicon.New()
//
//	// Custom letter, fonts from a bundled directory
//	cfg := appicon.DefaultConfig()
//	cfg.Text = "G"
//	g := appicon.New(appicon.WithConfig(cfg), appicon.WithResolver(&text.Resolver{
//	    Name: "font.ttf",
//	    Dirs: []string{"assets/fonts"},
//	}))
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	config         Config
	resolver       FontResolver
	logger         *slog.Logger
	frameSizes     []int
	renderedFrames bool
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		config:   DefaultConfig(),
		resolver: nil, // Will be built from the config if nil
		logger:   nil, // Falls back to the package logger
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithResolver sets the font resolver, replacing the system font lookup
// built from Config.FontName and Config.FontPath.
func WithResolver(r FontResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithLogger sets the logger of this generator. Without it the package
// logger (see SetLogger) is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFrameSizes sets the frame sizes written to the container. By default
// one frame is written per rendered canvas size.
func WithFrameSizes(sizes ...int) Option {
	return func(o *options) {
		o.frameSizes = append([]int(nil), sizes...)
	}
}

// WithRenderedFrames embeds each separately rendered canvas as the frame of
// its size instead of resampling the base image. Sizes with no rendered
// canvas are still resampled.
func WithRenderedFrames() Option {
	return func(o *options) {
		o.renderedFrames = true
	}
}
