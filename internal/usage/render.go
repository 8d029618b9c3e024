package usage

import (
	"fmt"
	"io"
	"strings"

	"github.com/mozilla-ai/gnuusage/internal/errors"
)

var (
	_ fmt.Stringer = Text[any]{}
	_ io.WriterTo  = Text[any]{}
)

// Text is a renderable view of a DisplayConfig.
type Text[K any] struct {
	cfg DisplayConfig[K]
}

// Text returns a view of the config that renders it when printed or written.
func (c DisplayConfig[K]) Text() Text[K] {
	return Text[K]{cfg: c}
}

// String implements fmt.Stringer.
func (t Text[K]) String() string {
	return String(t.cfg)
}

// WriteTo implements io.WriterTo.
func (t Text[K]) WriteTo(w io.Writer) (int64, error) {
	return render(w, t.cfg)
}

// String renders cfg and returns the resulting text.
func String[K any](cfg DisplayConfig[K]) string {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail.
	_, _ = render(&sb, cfg)
	return sb.String()
}

// Render writes the usage text for cfg to w.
// The first failed write stops rendering and is returned wrapped in errors.ErrRenderFailed,
// anything already written is left in w.
func Render[K any](w io.Writer, cfg DisplayConfig[K]) error {
	_, err := render(w, cfg)
	return err
}

func render[K any](w io.Writer, cfg DisplayConfig[K]) (int64, error) {
	s := &sink{w: w}

	writeHeader(s, cfg)

	if len(cfg.Options) > 0 {
		width := ColumnWidth(cfg.Options)
		for _, opt := range cfg.Options {
			writeOption(s, cfg.Fragments, width, opt)
		}
	}

	if s.err != nil {
		return s.n, fmt.Errorf("%w: %w", errors.ErrRenderFailed, s.err)
	}

	return s.n, nil
}

func writeHeader[K any](s *sink, cfg DisplayConfig[K]) {
	f := cfg.Fragments

	s.write(f.Usage, ": ", cfg.Program)
	if len(cfg.Options) > 0 {
		s.write(" [", f.Option, "]...")
	}
	if cfg.Doc != "" {
		s.write(f.Newline, cfg.Doc)
	}
	s.write(f.Newline)

	if len(cfg.Options) == 0 {
		return
	}

	s.write(f.Newline)
	if HasMandatoryArgument(cfg.Options) {
		s.write(f.MandatoryNotice, f.Newline, f.Newline)
	}
}

func writeOption[K any](s *sink, f Fragments, width int, opt Option[K]) {
	s.write("  ")

	if opt.HasShort() {
		s.write(f.ShortPrefix, opt.Short)
	} else {
		s.pad(GraphemeCount(f.ShortPrefix, MaxMeasuredGraphemes) + 1)
	}

	comma := opt.HasShort() && opt.Long != ""
	if comma {
		s.write(", ")
	} else if opt.Long != "" || opt.Doc != "" {
		s.write("  ")
	}

	// The long field is always written so that every documentation column lines up.
	s.write(f.LongPrefix, opt.Long)
	if opt.Argument != nil {
		s.write("=", opt.Argument.Name)
	}

	if opt.Doc != "" {
		s.pad(width - opt.EffectiveLength())
		s.write(" ", opt.Doc)
	}

	s.write(f.Newline)
}

// sink remembers the first write error and ignores every write after it.
type sink struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sink) write(parts ...string) {
	for _, p := range parts {
		if s.err != nil {
			return
		}
		if p == "" {
			continue
		}
		n, err := io.WriteString(s.w, p)
		s.n += int64(n)
		s.err = err
	}
}

func (s *sink) pad(n int) {
	if n > 0 {
		s.write(strings.Repeat(" ", n))
	}
}
