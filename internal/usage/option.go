// Package usage renders GNU-style, column aligned usage text from a list of option descriptors.
//
// All text handed to this package is expected to be in normalized form and composed of
// single-unit graphemes. Nothing is normalized, wrapped or truncated here. Widths used for
// alignment are measured in grapheme clusters and capped at MaxMeasuredGraphemes.
package usage

// MaxMeasuredGraphemes is the number of grapheme units of any single string that count towards alignment.
// Text beyond this is still printed in full.
const MaxMeasuredGraphemes = 256

// OptionArgument describes the value placeholder of an option, e.g. the 'SUF' in '--suffix=SUF'.
type OptionArgument struct {
	// Optional reports whether the argument may be omitted.
	Optional bool

	// Name is the placeholder displayed after '='.
	Name string
}

// Option describes a single command line option.
// K is an opaque, caller defined tag used to correlate options back to application semantics,
// it is never read while rendering.
type Option[K any] struct {
	// Key is the caller defined tag for this option.
	Key K

	// Long is the long form name without its prefix, e.g. 'ascii'. May be empty.
	Long string

	// Short is the short form, a single grapheme without its prefix, e.g. 'a'.
	// Empty means the option has no short form.
	Short string

	// Argument is the optional value placeholder.
	Argument *OptionArgument

	// Doc is the trailing description. May be empty.
	Doc string
}

// HasShort reports whether the option has a short form.
func (o Option[K]) HasShort() bool {
	return o.Short != ""
}

// HasMandatoryArgument reports whether the option takes an argument that cannot be omitted.
func (o Option[K]) HasMandatoryArgument() bool {
	return o.Argument != nil && !o.Argument.Optional
}

// EffectiveLength is the measured width of the long form plus its '=NAME' suffix, without the long prefix.
func (o Option[K]) EffectiveLength() int {
	n := GraphemeCount(o.Long, MaxMeasuredGraphemes)
	if o.Argument != nil {
		n += 1 + GraphemeCount(o.Argument.Name, MaxMeasuredGraphemes)
	}
	return n
}

// Fragments holds the localizable pieces of text used to assemble the header and the option rows.
type Fragments struct {
	// Usage is the word that starts the first line, e.g. 'Usage'.
	Usage string

	// Option is the generic placeholder for options in the synopsis, e.g. 'OPTION'.
	Option string

	// MandatoryNotice is the sentence shown when at least one option has a mandatory argument.
	MandatoryNotice string

	// Newline terminates every line, e.g. "\n".
	Newline string

	// ShortPrefix precedes short forms, e.g. '-'.
	ShortPrefix string

	// LongPrefix precedes long forms, e.g. '--'.
	LongPrefix string
}

// DefaultFragments returns the untranslated GNU fragments.
func DefaultFragments() Fragments {
	return Fragments{
		Usage:           "Usage",
		Option:          "OPTION",
		MandatoryNotice: "Mandatory arguments to long options are mandatory for short options too.",
		Newline:         "\n",
		ShortPrefix:     "-",
		LongPrefix:      "--",
	}
}

// DisplayConfig is everything needed to render one usage screen.
// It is assembled by the caller immediately before rendering and is only ever read.
type DisplayConfig[K any] struct {
	// Options are rendered in order.
	Options []Option[K]

	// Program is the program name shown after the usage word.
	Program string

	// Doc is the leading description printed below the synopsis. May be empty.
	Doc string

	Fragments
}

// ColumnWidth returns the largest EffectiveLength across opts, which is where documentation text aligns.
// An empty list yields 0.
func ColumnWidth[K any](opts []Option[K]) int {
	width := 0
	for _, o := range opts {
		width = max(width, o.EffectiveLength())
	}
	return width
}

// HasMandatoryArgument reports whether any option in opts has a mandatory argument.
func HasMandatoryArgument[K any](opts []Option[K]) bool {
	for _, o := range opts {
		if o.HasMandatoryArgument() {
			return true
		}
	}
	return false
}
