package output

import "io"

var (
	_ Handler[any] = (*JSONHandler[any])(nil)
	_ Handler[any] = (*YAMLHandler[any])(nil)
	_ Handler[any] = (*TextHandler[any])(nil)
)

// Handler renders command results in one output format.
type Handler[T any] interface {
	// HandleResult renders a single item, e.g. the layout of one usage document.
	HandleResult(item T) error

	// HandleResults renders several items in the order given.
	HandleResults(items ...T) error

	// HandleError renders the error.
	// Structured formats report it as a payload, the text format returns it to the caller.
	HandleError(err error) error
}

// WriteFunc writes output that frames a collection of items of type T, such as a header or footer.
// It receives the total count of items being printed, never an individual item.
type WriteFunc[T any] func(w io.Writer, count int)

type Printer[T any] interface {
	// Header should be called once before the Item.
	Header(w io.Writer, count int)

	// SetHeader can be used to configure the Header function.
	SetHeader(fn WriteFunc[T])

	// Item prints one element.
	Item(w io.Writer, elem T) error

	// Footer should be called once after the Item.
	Footer(w io.Writer, count int)

	// SetFooter can be used to configure the Footer function.
	SetFooter(fn WriteFunc[T])
}

// ResultsPayload wraps the results of a command that inspected several documents.
// The payload is serialized with the key "results".
type ResultsPayload[T any] struct {
	Results []T `json:"results" yaml:"results"`
}

// ResultPayload wraps the result of a command that inspected one document.
// The payload is serialized with the key "result".
type ResultPayload[T any] struct {
	Result T `json:"result" yaml:"result"`
}

// ErrorPayload reports a failed command in a structured format.
// The payload is serialized with the key "error".
type ErrorPayload struct {
	Error string `json:"error" yaml:"error"`
}
