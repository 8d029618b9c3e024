package config

import (
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mozilla-ai/gnuusage/internal/errors"
	"github.com/mozilla-ai/gnuusage/internal/perms"
	"github.com/mozilla-ai/gnuusage/internal/usage"
)

// Init creates a skeleton usage document, the format is chosen by the file extension.
func (d *DefaultLoader) Init(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), perms.RegularDir); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(format.skeleton()), perms.RegularFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (d *DefaultLoader) Load(path string) (*Document, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrConfigLoadFailed)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoadFailed, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: usage document cannot be found (%s), run: 'gnuusage init'", ErrConfigLoadFailed, path)
		}
		return nil, fmt.Errorf("%w: failed to read usage document (%s): %w", ErrConfigLoadFailed, path, err)
	}

	var raw map[string]any
	if err := format.decode(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode usage document (%s): %w", ErrConfigLoadFailed, path, err)
	}

	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("%w: %w (%s): %w", ErrConfigLoadFailed, errors.ErrInvalidDocument, path, err)
	}

	var doc Document
	if err := format.decode(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode usage document (%s): %w", ErrConfigLoadFailed, path, err)
	}

	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w (%s): %w", ErrConfigLoadFailed, errors.ErrInvalidDocument, path, err)
	}

	// Track the path that loaded this document.
	doc.documentPath = path

	return &doc, nil
}

// validate checks the semantic rules that the schema cannot express.
func (d *Document) validate() error {
	var errs []error

	if strings.TrimSpace(d.Program) == "" {
		errs = append(errs, NewErrInvalidValue("program", d.Program))
	}

	if d.Fragments != nil && d.Fragments.Newline != nil && *d.Fragments.Newline == "" {
		errs = append(errs, NewErrInvalidValue("fragments.newline", ""))
	}

	for i, o := range d.Options {
		if o.Short == "" && o.Long == "" {
			errs = append(errs, fmt.Errorf("options[%d]: at least one of short or long is required", i))
		}

		if o.Short != "" && usage.GraphemeCount(o.Short, 2) != 1 {
			errs = append(errs, NewErrInvalidValue(fmt.Sprintf("options[%d].short", i), o.Short))
		}

		if o.Argument != nil && strings.TrimSpace(o.Argument.Name) == "" {
			errs = append(errs, NewErrInvalidValue(fmt.Sprintf("options[%d].argument.name", i), o.Argument.Name))
		}
	}

	return stdErrors.Join(errs...)
}
