package options

import (
	"fmt"

	"github.com/mozilla-ai/gnuusage/internal/cmd/output"
	"github.com/mozilla-ai/gnuusage/internal/config"
	"github.com/mozilla-ai/gnuusage/internal/printer"
	"github.com/mozilla-ai/gnuusage/internal/usage"
)

type CmdOption func(*CmdOptions) error

type CmdOptions struct {
	ConfigLoader      config.Loader
	ConfigInitializer config.Initializer
	LayoutPrinter     output.Printer[usage.Layout]
}

func defaultOptions() CmdOptions {
	configLoader := &config.DefaultLoader{}
	return CmdOptions{
		ConfigLoader:      config.NewValidatingLoader(configLoader, config.UniqueKeys),
		ConfigInitializer: configLoader,
		LayoutPrinter:     &printer.LayoutPrinter{},
	}
}

func NewOptions(opt ...CmdOption) (CmdOptions, error) {
	opts := defaultOptions()

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(&opts); err != nil {
			return CmdOptions{}, err
		}
	}
	return opts, nil
}

func WithConfigLoader(l config.Loader) CmdOption {
	return func(o *CmdOptions) error {
		if l == nil {
			return fmt.Errorf("config loader cannot be nil")
		}
		o.ConfigLoader = l
		return nil
	}
}

func WithConfigInitializer(i config.Initializer) CmdOption {
	return func(o *CmdOptions) error {
		if i == nil {
			return fmt.Errorf("config initializer cannot be nil")
		}
		o.ConfigInitializer = i
		return nil
	}
}

func WithLayoutPrinter(p output.Printer[usage.Layout]) CmdOption {
	return func(o *CmdOptions) error {
		if p == nil {
			return fmt.Errorf("layout printer cannot be nil")
		}
		o.LayoutPrinter = p
		return nil
	}
}
