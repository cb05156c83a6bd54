package cli

import (
	"errors"
	"flag"
	"fmt"

	"cloudeng.io/cmdutil/flags"

	"DNA-Pairwise-Alignment/dna_aligner/common"
	"DNA-Pairwise-Alignment/dna_aligner/config"
	alignio "DNA-Pairwise-Alignment/dna_aligner/io"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	Seq1       string
	Seq2       string
	File       string
	Seq1File   string
	Seq2File   string
	MatrixFile string // saved JSON matrix to trace back instead of filling
	RevComp    bool

	// Alignment
	Method     string
	ConfigFile string
	Match      int
	Mismatch   int
	Gap        int
	MaxCells   int

	// Output
	Output       string
	OutputFormat string
	NoColor      bool
	Heatmap      bool
	HeatmapPNG   string

	// Logging
	LogLevel  int
	LogFormat string
	LogFile   string

	// Set records the names of flags given on the command line, so that
	// only those override values from the config file.
	Set map[string]bool
}

// NewFlagSet returns a FlagSet with usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: pairwise DNA sequence alignment (Smith-Waterman / Needleman-Wunsch)

Usage of %s:
  %s --seq1 ACTG --seq2 ACCG [flags]
  %s --file pair.(json|yaml|txt|fasta) [flags]
  %s --seq1-file query.txt --seq2-file ref.txt [flags]

%s`, name, name, name, name, name, flags.Defaults(fs))
	}
	return fs
}

// ParseArgs registers and parses all flags and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Seq1, "seq1", "", "first DNA sequence")
	fs.StringVar(&opt.Seq2, "seq2", "", "second DNA sequence")
	fs.StringVar(&opt.File, "file", "", "input file holding both sequences (JSON, YAML, TXT, FASTA)")
	fs.StringVar(&opt.Seq1File, "seq1-file", "", "file holding only the first sequence")
	fs.StringVar(&opt.Seq2File, "seq2-file", "", "file holding only the second sequence")
	fs.BoolVar(&opt.RevComp, "revcomp", false, "align against the reverse complement of the second sequence")
	fs.StringVar(&opt.MatrixFile, "matrix", "", "trace back a score matrix saved as JSON instead of computing one")

	fs.StringVar(&opt.Method, "method", config.DefaultMethod, "alignment method: "+common.ModeLocal+" | "+common.ModeGlobal)
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file (scoring weights, method, limits, logging)")
	fs.IntVar(&opt.Match, "match", config.DefaultMatch, "match score")
	fs.IntVar(&opt.Mismatch, "mismatch", config.DefaultMismatch, "mismatch score")
	fs.IntVar(&opt.Gap, "gap", config.DefaultGap, "gap score")
	fs.IntVar(&opt.MaxCells, "max-cells", config.DefaultMaxCells, "reject inputs whose score matrix exceeds this many cells")

	fs.StringVar(&opt.Output, "output", "", "save the score matrix to this file")
	fs.StringVar(&opt.OutputFormat, "output-format", "", "matrix file format: txt | csv | json (default: from --output extension)")
	fs.BoolVar(&opt.NoColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&opt.Heatmap, "heatmap", false, "print an ASCII heatmap of the score matrix")
	fs.StringVar(&opt.HeatmapPNG, "heatmap-png", "", "write a PNG heatmap of the score matrix to this file")

	fs.IntVar(&opt.LogLevel, "log-level", 0, "logging level: 0=error, 1=warn, 2=info, 3=debug")
	fs.StringVar(&opt.LogFormat, "log-format", "text", "log format: text | json")
	fs.StringVar(&opt.LogFile, "log-file", "", "log file path (default stderr, - for stdout)")
	fs.BoolVar(&help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.Set[f.Name] = true })

	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	usingFile := opt.File != ""
	usingInline := opt.Set["seq1"] || opt.Set["seq2"]
	usingSeqFiles := opt.Seq1File != "" || opt.Seq2File != ""
	switch {
	case countTrue(usingFile, usingInline, usingSeqFiles) > 1:
		return opt, errors.New("use only one of --file, --seq1/--seq2 and --seq1-file/--seq2-file")
	case usingInline && !(opt.Set["seq1"] && opt.Set["seq2"]):
		return opt, errors.New("--seq1 and --seq2 must be supplied together")
	case usingSeqFiles && !flags.AllSet(opt.Seq1File, opt.Seq2File):
		return opt, errors.New("--seq1-file and --seq2-file must be supplied together")
	case !usingFile && !usingInline && !usingSeqFiles:
		return opt, errors.New("provide sequences via --seq1 and --seq2 or use --file")
	}
	if err := flags.OneOf(opt.Method).Validate(common.ModeLocal, common.ModeGlobal); err != nil {
		return opt, fmt.Errorf("--method: %w", err)
	}
	if opt.OutputFormat != "" {
		if err := flags.OneOf(opt.OutputFormat).Validate(alignio.FormatTXT, alignio.FormatCSV, alignio.FormatJSON); err != nil {
			return opt, fmt.Errorf("--output-format: %w", err)
		}
		if opt.Output == "" {
			return opt, errors.New("--output-format requires --output")
		}
	}
	if opt.Output != "" {
		if _, err := alignio.MatrixFormat(opt.Output, opt.OutputFormat); err != nil {
			return opt, fmt.Errorf("--output: %w", err)
		}
	}
	if err := flags.OneOf(opt.LogFormat).Validate("text", "json"); err != nil {
		return opt, fmt.Errorf("--log-format: %w", err)
	}
	if opt.MaxCells <= 0 {
		return opt, errors.New("--max-cells must be > 0")
	}
	return opt, nil
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// Apply overlays the flags given on the command line onto cfg.
func (o Options) Apply(cfg config.Config) config.Config {
	if o.Set["method"] {
		cfg.Method = o.Method
	}
	if o.Set["match"] {
		cfg.Scoring.Match = o.Match
	}
	if o.Set["mismatch"] {
		cfg.Scoring.Mismatch = o.Mismatch
	}
	if o.Set["gap"] {
		cfg.Scoring.Gap = o.Gap
	}
	if o.Set["max-cells"] {
		cfg.MaxCells = o.MaxCells
	}
	if o.Set["log-level"] {
		cfg.Logging.Level = o.LogLevel
	}
	if o.Set["log-format"] {
		cfg.Logging.Format = o.LogFormat
	}
	if o.Set["log-file"] {
		cfg.Logging.File = o.LogFile
	}
	return cfg
}
