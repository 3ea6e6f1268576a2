// Package trace logs allocator calls as structured records.
//
// A *Logger is an alloc.CallbackRef: wrap any allocator with alloc.NewProxy
// to get one log/slog record per delegated call.
//
//	a := alloc.NewProxy(region.New(mem), trace.New(trace.Options{Logger: slog.Default()}))
//
// Set ALLOC_TRACE=1 to make the package default, L, write debug records to
// stderr; otherwise L discards everything.
package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joshuapare/alloccompose/alloc"
)

// EnvVar enables the package default logger when set to a non-empty value.
const EnvVar = "ALLOC_TRACE"

// L is the package default listener. It discards all output unless EnvVar is set.
var L = New(Options{Logger: defaultLogger(os.Getenv(EnvVar) != ""), Level: slog.LevelDebug})

func defaultLogger(enabled bool) *slog.Logger {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Options configures a Logger.
type Options struct {
	Logger *slog.Logger // Destination. Default: slog.Default()
	Level  slog.Level   // Level of every record. Default: LevelInfo
	Before bool         // Also log before each call, not only after it
}

// Logger is a CallbackRef that writes each call it observes to a slog.Logger.
// Records carry the operation name in "op" plus whichever of size, align,
// new_size, new_align, addr, len, ok and err apply to it.
type Logger struct {
	log    *slog.Logger
	level  slog.Level
	before bool
}

var _ alloc.CallbackRef = (*Logger)(nil)

// New returns a Logger configured by opts.
func New(opts Options) *Logger {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log, level: opts.Level, before: opts.Before}
}

func (l *Logger) emit(msg, op string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !l.log.Enabled(ctx, l.level) {
		return
	}
	l.log.LogAttrs(ctx, l.level, msg, append([]slog.Attr{slog.String("op", op)}, attrs...)...)
}

func (l *Logger) pre(op string, attrs ...slog.Attr) {
	if l.before {
		l.emit("alloc call", op, attrs...)
	}
}

func (l *Logger) post(op string, attrs ...slog.Attr) {
	l.emit("alloc done", op, attrs...)
}

func layoutAttrs(prefix string, lay alloc.Layout) []slog.Attr {
	return []slog.Attr{slog.Int(prefix+"size", lay.Size()), slog.Int(prefix+"align", lay.Align())}
}

func blockAttrs(b []byte) []slog.Attr {
	return []slog.Attr{slog.String("addr", fmt.Sprintf("%#x", alloc.Addr(b))), slog.Int("len", len(b))}
}

func resultAttrs(b []byte, err error) []slog.Attr {
	if err != nil {
		return []slog.Attr{slog.Bool("ok", false), slog.String("err", err.Error())}
	}
	return append(blockAttrs(b), slog.Bool("ok", true))
}

func resizeAttrs(b []byte, old, new alloc.Layout) []slog.Attr {
	attrs := append(blockAttrs(b), layoutAttrs("", old)...)
	return append(attrs, layoutAttrs("new_", new)...)
}

func join(groups ...[]slog.Attr) []slog.Attr {
	var out []slog.Attr
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func (l *Logger) BeforeAlloc(lay alloc.Layout) { l.pre("alloc", layoutAttrs("", lay)...) }

func (l *Logger) AfterAlloc(lay alloc.Layout, b []byte, err error) {
	l.post("alloc", join(layoutAttrs("", lay), resultAttrs(b, err))...)
}

func (l *Logger) BeforeAllocZeroed(lay alloc.Layout) { l.pre("alloc_zeroed", layoutAttrs("", lay)...) }

func (l *Logger) AfterAllocZeroed(lay alloc.Layout, b []byte, err error) {
	l.post("alloc_zeroed", join(layoutAttrs("", lay), resultAttrs(b, err))...)
}

func (l *Logger) BeforeDealloc(b []byte, lay alloc.Layout) {
	l.pre("dealloc", join(blockAttrs(b), layoutAttrs("", lay))...)
}

func (l *Logger) AfterDealloc(b []byte, lay alloc.Layout) {
	l.post("dealloc", join(blockAttrs(b), layoutAttrs("", lay))...)
}

func (l *Logger) BeforeGrow(b []byte, old, new alloc.Layout) {
	l.pre("grow", resizeAttrs(b, old, new)...)
}

func (l *Logger) AfterGrow(b []byte, old, new alloc.Layout, result []byte, err error) {
	l.post("grow", l.resized(b, old, new, result, err)...)
}

func (l *Logger) BeforeGrowZeroed(b []byte, old, new alloc.Layout) {
	l.pre("grow_zeroed", resizeAttrs(b, old, new)...)
}

func (l *Logger) AfterGrowZeroed(b []byte, old, new alloc.Layout, result []byte, err error) {
	l.post("grow_zeroed", l.resized(b, old, new, result, err)...)
}

func (l *Logger) BeforeShrink(b []byte, old, new alloc.Layout) {
	l.pre("shrink", resizeAttrs(b, old, new)...)
}

func (l *Logger) AfterShrink(b []byte, old, new alloc.Layout, result []byte, err error) {
	l.post("shrink", l.resized(b, old, new, result, err)...)
}

func (l *Logger) BeforeGrowInPlace(b []byte, old, new alloc.Layout) {
	l.pre("grow_in_place", resizeAttrs(b, old, new)...)
}

func (l *Logger) AfterGrowInPlace(b []byte, old, new alloc.Layout, result []byte, err error) {
	l.post("grow_in_place", l.resized(b, old, new, result, err)...)
}

func (l *Logger) BeforeGrowInPlaceZeroed(b []byte, old, new alloc.Layout) {
	l.pre("grow_in_place_zeroed", resizeAttrs(b, old, new)...)
}

func (l *Logger) AfterGrowInPlaceZeroed(b []byte, old, new alloc.Layout, result []byte, err error) {
	l.post("grow_in_place_zeroed", l.resized(b, old, new, result, err)...)
}

func (l *Logger) BeforeShrinkInPlace(b []byte, old, new alloc.Layout) {
	l.pre("shrink_in_place", resizeAttrs(b, old, new)...)
}

func (l *Logger) AfterShrinkInPlace(b []byte, old, new alloc.Layout, result []byte, err error) {
	l.post("shrink_in_place", l.resized(b, old, new, result, err)...)
}

// resized reports the new block's address under "new_addr" so that both
// addresses of a moving resize appear in one record.
func (l *Logger) resized(b []byte, old, new alloc.Layout, result []byte, err error) []slog.Attr {
	attrs := resizeAttrs(b, old, new)
	if err != nil {
		return append(attrs, slog.Bool("ok", false), slog.String("err", err.Error()))
	}
	return append(attrs, slog.String("new_addr", fmt.Sprintf("%#x", alloc.Addr(result))), slog.Bool("ok", true))
}

func (l *Logger) BeforeAllocateAll() { l.pre("allocate_all") }

func (l *Logger) AfterAllocateAll(b []byte, err error) {
	l.post("allocate_all", resultAttrs(b, err)...)
}

func (l *Logger) BeforeAllocateAllZeroed() { l.pre("allocate_all_zeroed") }

func (l *Logger) AfterAllocateAllZeroed(b []byte, err error) {
	l.post("allocate_all_zeroed", resultAttrs(b, err)...)
}

func (l *Logger) BeforeDeallocateAll() { l.pre("deallocate_all") }
func (l *Logger) AfterDeallocateAll()  { l.post("deallocate_all") }

func (l *Logger) BeforeOwns(b []byte) { l.pre("owns", blockAttrs(b)...) }

func (l *Logger) AfterOwns(b []byte, owned bool) {
	l.post("owns", append(blockAttrs(b), slog.Bool("ok", owned))...)
}
