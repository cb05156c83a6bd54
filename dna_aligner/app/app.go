package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"cloudeng.io/logging/ctxlog"

	"DNA-Pairwise-Alignment/dna_aligner/aligner"
	"DNA-Pairwise-Alignment/dna_aligner/cli"
	"DNA-Pairwise-Alignment/dna_aligner/common"
	"DNA-Pairwise-Alignment/dna_aligner/config"
	alignio "DNA-Pairwise-Alignment/dna_aligner/io"
	"DNA-Pairwise-Alignment/dna_aligner/sequence"
	"DNA-Pairwise-Alignment/dna_aligner/visualize"
)

// Exit codes
const (
	ExitOK     = 0
	ExitUsage  = 2 // bad flags, unreadable or malformed input, oversized input
	ExitOutput = 3 // failure writing results
)

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, aligns the two sequences and reports the result on stdout.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dna-aligner")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	cfg := config.Default()
	if opts.ConfigFile != "" {
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return ExitUsage
		}
	}
	cfg = opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitUsage
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitUsage
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)

	seq1, seq2, err := loadSequences(opts)
	if err != nil {
		ctxlog.Logger(ctx).Error("reading sequences", "error", err)
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitUsage
	}
	if opts.RevComp {
		seq2 = sequence.ReverseComplement(seq2)
		ctxlog.Logger(ctx).Info("aligning against reverse complement of seq2")
	}
	describeInput(ctx, seq1, seq2)

	if err := config.CheckSize(len(seq1), len(seq2), cfg.MaxCells); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitUsage
	}

	res, err := align(ctx, cfg, opts.MatrixFile, seq1, seq2)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitUsage
	}

	if err := report(outw, res, seq1, seq2, opts); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitOutput
	}
	if code := save(ctx, outw, stderr, res, opts); code != ExitOK {
		return code
	}
	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, "Error:", err)
		return ExitOutput
	}
	return ExitOK
}

func loadSequences(opts cli.Options) (string, string, error) {
	switch {
	case opts.File != "":
		return alignio.ReadPair(opts.File)
	case opts.Seq1File != "":
		seq1, err := alignio.ReadSequence(opts.Seq1File)
		if err != nil {
			return "", "", err
		}
		seq2, err := alignio.ReadSequence(opts.Seq2File)
		if err != nil {
			return "", "", err
		}
		return seq1, seq2, nil
	}
	return opts.Seq1, opts.Seq2, nil
}

func describeInput(ctx context.Context, seq1, seq2 string) {
	log := ctxlog.Logger(ctx)
	log.Info("sequences loaded",
		"seq1.length", len(seq1), "seq2.length", len(seq2),
		"seq1.gc", fmt.Sprintf("%.4f", sequence.CalculateGCContent(seq1)),
		"seq2.gc", fmt.Sprintf("%.4f", sequence.CalculateGCContent(seq2)))
	for k, seq := range [2]string{seq1, seq2} {
		if odd := sequence.NonNucleotides(seq); len(odd) > 0 {
			log.Warn("symbols outside ACGTUN are compared as-is", "sequence", k+1, "symbols", string(odd))
		}
	}
}

// align fills and traces back a matrix, or only traces back when matrixFile names a saved one.
func align(ctx context.Context, cfg config.Config, matrixFile, seq1, seq2 string) (aligner.Result, error) {
	log := ctxlog.Logger(ctx)
	a := aligner.New(cfg.Scoring)
	start := time.Now()

	if matrixFile != "" {
		rows, err := alignio.ReadMatrixJSON(matrixFile)
		if err != nil {
			return aligner.Result{}, err
		}
		m, err := aligner.MatrixFromRows(rows)
		if err != nil {
			return aligner.Result{}, fmt.Errorf("%s: %w", matrixFile, err)
		}
		res, err := a.Trace(cfg.Method, m, seq1, seq2)
		if err != nil {
			return aligner.Result{}, fmt.Errorf("%s: %w", matrixFile, err)
		}
		log.Info("traced saved matrix", "file", matrixFile, "method", cfg.Method, "elapsed", time.Since(start))
		return res, nil
	}

	res, err := a.Align(cfg.Method, seq1, seq2)
	if err != nil {
		return aligner.Result{}, err
	}
	log.Info("alignment done", "method", cfg.Method,
		"match", cfg.Scoring.Match, "mismatch", cfg.Scoring.Mismatch, "gap", cfg.Scoring.Gap,
		"score", res.Score, "elapsed", time.Since(start))
	return res, nil
}

func report(w io.Writer, res aligner.Result, seq1, seq2 string, opts cli.Options) error {
	color := !opts.NoColor
	if _, err := fmt.Fprintln(w, "\nAlignment Score Matrix:"); err != nil {
		return err
	}
	if err := visualize.Table(w, res.Matrix, seq1, seq2); err != nil {
		return err
	}
	switch res.Mode {
	case common.ModeLocal:
		fmt.Fprintf(w, "\nMaximum Alignment Score: %d\n", res.Max.Score)
		fmt.Fprintf(w, "Max Score Position: (%d, %d)\n", res.Max.Position.Row, res.Max.Position.Col)
	case common.ModeGlobal:
		fmt.Fprintf(w, "\nGlobal Alignment Score: %d\n", res.Score)
	}
	if err := visualize.ColoredAlignment(w, res.Pair, color); err != nil {
		return err
	}
	st := res.Stats
	if _, err := fmt.Fprintf(w, "Identity: %d/%d (%.1f%%), mismatches: %d, gaps: %d\n",
		st.Matches, st.Length, 100*st.Identity, st.Mismatches, st.Gaps); err != nil {
		return err
	}
	if opts.Heatmap {
		return visualize.ASCIIHeatmap(w, res.Matrix, color)
	}
	return nil
}

func save(ctx context.Context, w, stderr io.Writer, res aligner.Result, opts cli.Options) int {
	log := ctxlog.Logger(ctx)
	if opts.Output != "" {
		if err := alignio.WriteMatrixFile(opts.Output, opts.OutputFormat, res.Matrix.ToRows()); err != nil {
			log.Error("saving matrix", "file", opts.Output, "error", err)
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return ExitOutput
		}
		log.Info("matrix saved", "file", opts.Output)
		fmt.Fprintf(w, "Results saved to %s\n", opts.Output)
	}
	if opts.HeatmapPNG != "" {
		if err := visualize.SavePNGHeatmap(opts.HeatmapPNG, res.Matrix, visualize.DefaultCellSize); err != nil {
			log.Error("saving heatmap", "file", opts.HeatmapPNG, "error", err)
			_, _ = fmt.Fprintln(stderr, "Error:", err)
			return ExitOutput
		}
		fmt.Fprintf(w, "Heatmap saved to %s\n", opts.HeatmapPNG)
	}
	return ExitOK
}
