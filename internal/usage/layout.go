package usage

// Layout describes how a DisplayConfig is aligned when rendered, without rendering it.
type Layout struct {
	// Program is the program name the layout was measured for.
	Program string `json:"program" yaml:"program"`

	// ColumnWidth is the largest effective length of any option.
	ColumnWidth int `json:"columnWidth" yaml:"column_width"`

	// MandatoryNotice reports whether the mandatory arguments sentence is shown.
	MandatoryNotice bool `json:"mandatoryNotice" yaml:"mandatory_notice"`

	// Rows holds one entry per option, in display order.
	Rows []RowLayout `json:"rows" yaml:"rows"`
}

// RowLayout describes a single option row.
type RowLayout struct {
	// Short is the rendered short field, e.g. '-a'. Empty when the option has no short form.
	Short string `json:"short,omitempty" yaml:"short,omitempty"`

	// Long is the rendered long field including any argument, e.g. '--suffix=SUF'.
	// The long prefix is present even when the option has no long form.
	Long string `json:"long" yaml:"long"`

	// Effective is the measured length used for alignment.
	Effective int `json:"effective" yaml:"effective"`

	// Padding is the number of spaces inserted between the long field and the documentation.
	Padding int `json:"padding" yaml:"padding"`

	// HasDoc reports whether the row carries documentation text.
	HasDoc bool `json:"hasDoc" yaml:"has_doc"`

	// DocColumn is the zero based grapheme offset at which documentation starts.
	// Only meaningful when HasDoc is true.
	DocColumn int `json:"docColumn" yaml:"doc_column"`
}

// Measure computes the layout that Render would produce for cfg.
func Measure[K any](cfg DisplayConfig[K]) Layout {
	l := Layout{
		Program:         cfg.Program,
		MandatoryNotice: HasMandatoryArgument(cfg.Options),
	}
	if len(cfg.Options) == 0 {
		return l
	}

	l.ColumnWidth = ColumnWidth(cfg.Options)
	l.Rows = make([]RowLayout, 0, len(cfg.Options))
	for _, opt := range cfg.Options {
		l.Rows = append(l.Rows, measureRow(cfg.Fragments, l.ColumnWidth, opt))
	}

	return l
}

func measureRow[K any](f Fragments, width int, opt Option[K]) RowLayout {
	r := RowLayout{
		Effective: opt.EffectiveLength(),
		HasDoc:    opt.Doc != "",
	}

	// Leading indent.
	col := 2

	if opt.HasShort() {
		r.Short = f.ShortPrefix + opt.Short
		col += GraphemeCount(r.Short, MaxMeasuredGraphemes)
	} else {
		col += GraphemeCount(f.ShortPrefix, MaxMeasuredGraphemes) + 1
	}

	// Either the ", " separator or its two space stand-in.
	if opt.Long != "" || opt.Doc != "" {
		col += 2
	}

	r.Long = f.LongPrefix + opt.Long
	if opt.Argument != nil {
		r.Long += "=" + opt.Argument.Name
	}
	col += GraphemeCount(f.LongPrefix, MaxMeasuredGraphemes) + r.Effective

	if r.HasDoc {
		r.Padding = max(width-r.Effective, 0)
		r.DocColumn = col + r.Padding + 1
	}

	return r
}
