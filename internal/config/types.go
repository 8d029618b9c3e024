package config

import (
	"strings"

	"github.com/mozilla-ai/gnuusage/internal/usage"
)

var (
	_ Provider = (*DefaultLoader)(nil)
	_ Loader   = (*validatingLoader)(nil)
)

type Loader interface {
	Load(path string) (*Document, error)
}

type Initializer interface {
	Init(path string) error
}

type Provider interface {
	Initializer
	Loader
}

type DefaultLoader struct{}

// Document represents a usage document, describing the help screen of a single program.
type Document struct {
	// Program is the name shown after the usage word.
	// e.g. 'gzip'
	Program string `json:"program" toml:"program" yaml:"program"`

	// Doc is the leading description printed under the synopsis line.
	Doc string `json:"doc,omitempty" toml:"doc,omitempty" yaml:"doc,omitempty"`

	// Fragments overrides individual pieces of localizable text.
	// Missing entries fall back to usage.DefaultFragments.
	Fragments *FragmentEntries `json:"fragments,omitempty" toml:"fragments,omitempty" yaml:"fragments,omitempty"`

	// Options are displayed in the order they are declared.
	Options []OptionEntry `json:"options,omitempty" toml:"options,omitempty" yaml:"options,omitempty"`

	documentPath string `toml:"-"`
}

// OptionEntry represents the configuration of a single option.
type OptionEntry struct {
	// Key is an identifier for the option, it is not displayed.
	// Defaults to the long form, then the short form, when not provided.
	Key string `json:"key,omitempty" toml:"key,omitempty" yaml:"key,omitempty"`

	// Short is a single character short form without its prefix.
	// e.g. 'a'
	Short string `json:"short,omitempty" toml:"short,omitempty" yaml:"short,omitempty"`

	// Long is the long form without its prefix.
	// e.g. 'ascii'
	Long string `json:"long,omitempty" toml:"long,omitempty" yaml:"long,omitempty"`

	// Argument describes the value placeholder, if the option takes one.
	Argument *ArgumentEntry `json:"argument,omitempty" toml:"argument,omitempty" yaml:"argument,omitempty"`

	// Doc is the trailing description.
	Doc string `json:"doc,omitempty" toml:"doc,omitempty" yaml:"doc,omitempty"`
}

// ArgumentEntry represents an option's value placeholder.
type ArgumentEntry struct {
	// Name is shown after '=', e.g. 'SUF'.
	Name string `json:"name" toml:"name" yaml:"name"`

	// Optional marks the argument as one that may be omitted.
	Optional bool `json:"optional,omitempty" toml:"optional,omitempty" yaml:"optional,omitempty"`
}

// FragmentEntries holds optional overrides for usage.Fragments.
// Entries are pointers so that an explicitly empty value can be told apart from a missing one.
type FragmentEntries struct {
	Usage           *string `json:"usage,omitempty" toml:"usage,omitempty" yaml:"usage,omitempty"`
	Option          *string `json:"option,omitempty" toml:"option,omitempty" yaml:"option,omitempty"`
	MandatoryNotice *string `json:"mandatory_notice,omitempty" toml:"mandatory_notice,omitempty" yaml:"mandatory_notice,omitempty"`
	Newline         *string `json:"newline,omitempty" toml:"newline,omitempty" yaml:"newline,omitempty"`
	ShortPrefix     *string `json:"short_prefix,omitempty" toml:"short_prefix,omitempty" yaml:"short_prefix,omitempty"`
	LongPrefix      *string `json:"long_prefix,omitempty" toml:"long_prefix,omitempty" yaml:"long_prefix,omitempty"`
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.documentPath
}

// OptionKey returns the key for the option, falling back to its long and then short form.
func (e *OptionEntry) OptionKey() string {
	if k := strings.TrimSpace(e.Key); k != "" {
		return k
	}
	if e.Long != "" {
		return e.Long
	}
	return e.Short
}

// Resolve applies the overrides on top of base.
func (f *FragmentEntries) Resolve(base usage.Fragments) usage.Fragments {
	if f == nil {
		return base
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&base.Usage, f.Usage)
	set(&base.Option, f.Option)
	set(&base.MandatoryNotice, f.MandatoryNotice)
	set(&base.Newline, f.Newline)
	set(&base.ShortPrefix, f.ShortPrefix)
	set(&base.LongPrefix, f.LongPrefix)

	return base
}

// DisplayConfig converts the document into the input expected by the usage renderer.
func (d *Document) DisplayConfig() usage.DisplayConfig[string] {
	opts := make([]usage.Option[string], 0, len(d.Options))
	for _, e := range d.Options {
		opt := usage.Option[string]{
			Key:   e.OptionKey(),
			Short: e.Short,
			Long:  e.Long,
			Doc:   e.Doc,
		}
		if e.Argument != nil {
			opt.Argument = &usage.OptionArgument{
				Name:     e.Argument.Name,
				Optional: e.Argument.Optional,
			}
		}
		opts = append(opts, opt)
	}

	return usage.DisplayConfig[string]{
		Options:   opts,
		Program:   d.Program,
		Doc:       d.Doc,
		Fragments: d.Fragments.Resolve(usage.DefaultFragments()),
	}
}
