package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/logust79/varnorm/internal/duckdb"
	"github.com/logust79/varnorm/internal/fasta"
	"github.com/logust79/varnorm/internal/normalize"
	"github.com/logust79/varnorm/internal/output"
	"github.com/logust79/varnorm/internal/variant"
)

type normalizeOptions struct {
	input      string
	fastaPath  string
	cachePath  string
	outputFile string
	format     string
	leftAlign  bool
	workers    int
	strict     bool
	verbose    bool
}

func newNormalizeCmd() *cobra.Command {
	var (
		right      bool
		fastaPath  string
		cachePath  string
		outputFile string
		format     string
		workers    int
		strict     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "normalize [flags] <input>",
		Short: "Normalize a list of variant identifiers",
		Long: `Normalize variant identifiers (one "chrom-pos-ref-alt" per line) into
their minimal canonical representation.

By default variants are left-aligned (anchored at the lowest genomic
coordinate); use --right to keep the original anchoring instead. Sentinel
deletions ("*" or "-" alternate alleles) require a reference genome FASTA.`,
		Example: `  varnorm normalize variants.txt
  varnorm normalize --right -f plain -o normalized.txt variants.txt.gz
  varnorm normalize --fasta GRCh38.fa --cache results.duckdb variants.txt
  cat variants.txt | varnorm normalize -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config file fallbacks for flags left at their defaults
			if !cmd.Flags().Changed("right") && viper.GetString("align") == "right" {
				right = true
			}
			if fastaPath == "" {
				fastaPath = viper.GetString("reference.fasta")
			}
			if cachePath == "" && !cmd.Flags().Changed("cache") {
				cachePath = viper.GetString("cache.path")
			}

			return runNormalize(normalizeOptions{
				input:      args[0],
				fastaPath:  fastaPath,
				cachePath:  cachePath,
				outputFile: outputFile,
				format:     format,
				leftAlign:  !right,
				workers:    workers,
				strict:     strict,
				verbose:    verbose,
			})
		},
	}

	cmd.Flags().BoolVar(&right, "right", false, "Right-align variants (default: left-align)")
	cmd.Flags().StringVar(&fastaPath, "fasta", "", "Reference genome FASTA for sentinel deletions")
	cmd.Flags().StringVar(&cachePath, "cache", "", "DuckDB file caching normalization results")
	cmd.Flags().StringVarP(&format, "output-format", "f", "tab", "Output format: tab, plain")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker count for batch normalization (0 = all CPUs)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first malformed or unresolvable variant")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runNormalize(opts normalizeOptions) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	reader, err := variant.NewReader(opts.input)
	if err != nil {
		return err
	}
	defer reader.Close()

	var accessor normalize.ReferenceAccessor
	if opts.fastaPath != "" {
		genome := fasta.NewGenome(opts.fastaPath)
		if err := genome.Load(); err != nil {
			return fmt.Errorf("load reference FASTA: %w", err)
		}
		logger.Info("loaded reference genome",
			zap.String("path", opts.fastaPath),
			zap.Int("chromosomes", genome.SequenceCount()))
		accessor = genome
	}

	norm := normalize.NewNormalizer(accessor)
	norm.SetLogger(logger)

	out := os.Stdout
	if opts.outputFile != "" {
		out, err = os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	var writer output.Writer
	switch opts.format {
	case "tab":
		writer = output.NewTabWriter(out)
	case "plain":
		writer = output.NewPlainWriter(out)
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var failed int
	if opts.cachePath != "" {
		store, err := duckdb.Open(opts.cachePath)
		if err != nil {
			return fmt.Errorf("open result cache: %w", err)
		}
		defer store.Close()

		failed, err = normalizeWithCache(reader, norm, store, writer, logger, opts)
		if err != nil {
			return err
		}
	} else {
		failed, err = normalizeParallel(reader, norm, writer, logger, opts)
		if err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if failed > 0 {
		logger.Warn("some variants failed to normalize", zap.Int("failed", failed))
	}

	return nil
}

// normalizeParallel streams identifiers through the normalizer's worker
// pool and writes results in input order.
func normalizeParallel(reader *variant.Reader, norm *normalize.Normalizer, writer output.Writer, logger *zap.Logger, opts normalizeOptions) (int, error) {
	items := make(chan normalize.WorkItem)

	var readErr error
	go func() {
		defer close(items)
		seq := 0
		for {
			id, err := reader.Next()
			if err != nil {
				readErr = err
				return
			}
			if id == "" {
				return
			}
			items <- normalize.WorkItem{Seq: seq, ID: id}
			seq++
		}
	}()

	failed := 0
	results := norm.ParallelNormalize(items, opts.leftAlign, opts.workers)
	err := normalize.OrderedCollect(results, func(r normalize.WorkResult) error {
		if r.Err != nil {
			if opts.strict {
				return fmt.Errorf("normalize %q: %w", r.ID, r.Err)
			}
			logger.Warn("skipping variant", zap.String("variant", r.ID), zap.Error(r.Err))
			failed++
			return nil
		}
		return writer.Write(r.Original, r.Normalized)
	})
	if err != nil {
		return failed, err
	}
	if readErr != nil {
		return failed, readErr
	}

	return failed, nil
}

// normalizeWithCache serves variants from the DuckDB cache where possible
// and batch-writes the misses back at the end of the run.
func normalizeWithCache(reader *variant.Reader, norm *normalize.Normalizer, store *duckdb.Store, writer output.Writer, logger *zap.Logger, opts normalizeOptions) (int, error) {
	var pending []duckdb.Result
	failed := 0
	hits := 0

	for {
		id, err := reader.Next()
		if err != nil {
			return failed, err
		}
		if id == "" {
			break
		}

		v, err := variant.Parse(id)
		if err != nil {
			if opts.strict {
				return failed, err
			}
			logger.Warn("skipping variant", zap.String("variant", id), zap.Error(err))
			failed++
			continue
		}

		normed, found, err := store.Lookup(v, opts.leftAlign)
		if err != nil {
			return failed, fmt.Errorf("cache lookup: %w", err)
		}

		if !found {
			normed, err = norm.NormalizeVariant(v, opts.leftAlign)
			if err != nil {
				if opts.strict {
					return failed, err
				}
				logger.Warn("skipping variant", zap.String("variant", id), zap.Error(err))
				failed++
				continue
			}
			pending = append(pending, duckdb.Result{
				Original:    v,
				Normalized:  normed,
				LeftAligned: opts.leftAlign,
			})
		} else {
			hits++
		}

		if err := writer.Write(v, normed); err != nil {
			return failed, fmt.Errorf("write result: %w", err)
		}
	}

	if err := store.WriteResults(pending); err != nil {
		return failed, fmt.Errorf("write result cache: %w", err)
	}

	logger.Info("normalization complete",
		zap.Int("cached", hits),
		zap.Int("computed", len(pending)),
		zap.Int("failed", failed))

	return failed, nil
}
