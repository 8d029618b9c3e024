package output

import (
	"io"
)

// TextHandler delegates each item to a Printer, separating items with a blank line.
type TextHandler[T any] struct {
	out     io.Writer
	printer Printer[T]
}

func NewTextHandler[T any](w io.Writer, p Printer[T]) *TextHandler[T] {
	return &TextHandler[T]{
		out:     w,
		printer: p,
	}
}

// HandleResult prints a single item surrounded by the printer's header and footer.
func (h *TextHandler[T]) HandleResult(item T) error {
	return h.HandleResults(item)
}

func (h *TextHandler[T]) HandleResults(items ...T) error {
	if len(items) == 0 {
		_, err := io.WriteString(h.out, "Nothing to display\n")
		return err
	}

	h.printer.Header(h.out, len(items))

	for i, it := range items {
		if i > 0 {
			if _, err := io.WriteString(h.out, "\n"); err != nil {
				return err
			}
		}
		if err := h.printer.Item(h.out, it); err != nil {
			return err
		}
	}

	h.printer.Footer(h.out, len(items))

	return nil
}

func (h *TextHandler[T]) HandleError(err error) error {
	return err
}
