package log

import (
	"context"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals coordinates are rounded to.
// Two decimals of latitude is roughly one kilometre.
const DefaultPrecision = 2

// locationKeys are attribute keys that carry a single coordinate.
var locationKeys = map[string]bool{
	"latitude":  true,
	"longitude": true,
	"lat":       true,
	"lon":       true,
	"lng":       true,
	"long":      true,
}

// pairKeys are attribute keys whose string value is a "lat,lon" pair.
var pairKeys = map[string]bool{
	"coordinate": true,
	"coord":      true,
	"location":   true,
	"position":   true,
}

// LocationHandler wraps an slog.Handler and rounds coordinate attributes
// before passing records on.
type LocationHandler struct {
	// handler is the underlying slog handler that receives coarsened records.
	handler slog.Handler

	// precision is the number of decimals kept.
	precision int
}

// NewLocationHandler creates a new LocationHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. A negative precision
// is treated as DefaultPrecision.
func NewLocationHandler(handler slog.Handler, precision int) *LocationHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &LocationHandler{handler: handler, precision: precision}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LocationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle coarsens the record's attributes and passes it to the underlying handler.
func (h *LocationHandler) Handle(ctx context.Context, r slog.Record) error {
	coarse := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		coarse.AddAttrs(h.coarsenAttr(a))
		return true
	})
	return h.handler.Handle(ctx, coarse)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *LocationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	coarse := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		coarse[i] = h.coarsenAttr(a)
	}
	return &LocationHandler{handler: h.handler.WithAttrs(coarse), precision: h.precision}
}

// WithGroup returns a new handler with the given group name.
func (h *LocationHandler) WithGroup(name string) slog.Handler {
	return &LocationHandler{handler: h.handler.WithGroup(name), precision: h.precision}
}

// coarsenAttr rounds a single attribute, recursively handling groups.
func (h *LocationHandler) coarsenAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		coarse := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			coarse[i] = h.coarsenAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(coarse...)}
	}

	key := strings.ToLower(a.Key)
	switch {
	case locationKeys[key] || strings.HasSuffix(key, "latitude") || strings.HasSuffix(key, "longitude"):
		return h.coarsenScalar(a)
	case pairKeys[key] && a.Value.Kind() == slog.KindString:
		return slog.String(a.Key, h.coarsenList(a.Value.String()))
	}
	return a
}

func (h *LocationHandler) coarsenScalar(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindFloat64:
		return slog.Float64(a.Key, h.round(a.Value.Float64()))
	case slog.KindString:
		return slog.String(a.Key, h.coarsenList(a.Value.String()))
	default:
		return a
	}
}

// coarsenList rounds every comma separated number in s and leaves other
// fields untouched.
func (h *LocationHandler) coarsenList(s string) string {
	fields := strings.Split(s, ",")
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			continue
		}
		fields[i] = strconv.FormatFloat(h.round(v), 'f', h.precision, 64)
	}
	return strings.Join(fields, ",")
}

func (h *LocationHandler) round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow10(h.precision)
	return math.Round(v*scale) / scale
}

// Level returns the minimum level for the given verbosity.
// Verbose output includes debug records; otherwise only warnings and errors.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger that coarsens coordinates.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(verbose)}
	return slog.New(NewLocationHandler(slog.NewTextHandler(w, opts), DefaultPrecision))
}

// NewJSONLogger creates a JSON slog.Logger that coarsens coordinates.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: Level(verbose)}
	return slog.New(NewLocationHandler(slog.NewJSONHandler(w, opts), DefaultPrecision))
}

// NewTeeLogger creates a logger writing text to console at the verbosity
// level and JSON to file at debug level. Coordinates are coarsened in both.
func NewTeeLogger(console, file io.Writer, verbose bool) *slog.Logger {
	text := slog.NewTextHandler(console, &slog.HandlerOptions{Level: Level(verbose)})
	jsonl := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewLocationHandler(NewTeeHandler(text, jsonl), DefaultPrecision))
}
