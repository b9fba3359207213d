// Package fasta provides a reference genome accessor backed by FASTA files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Genome holds reference sequences indexed by chromosome name.
// Lookup tolerates a "chr" prefix mismatch between the FASTA headers and
// the queried chromosome names.
type Genome struct {
	path      string
	sequences map[string]string // chromosome -> sequence
}

// NewGenome creates a genome accessor for the given FASTA path.
// Call Load before fetching.
func NewGenome(path string) *Genome {
	return &Genome{
		path:      path,
		sequences: make(map[string]string),
	}
}

// Load parses the FASTA file and stores sequences indexed by chromosome.
func (g *Genome) Load() error {
	f, err := os.Open(g.path)
	if err != nil {
		return fmt.Errorf("open FASTA file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f

	// Handle gzipped files
	if strings.HasSuffix(g.path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	return g.parseFASTA(reader)
}

// parseFASTA parses FASTA content. Headers like ">1 dna:chromosome ..." or
// ">chr1" both index the sequence under the first whitespace token.
func (g *Genome) parseFASTA(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	// Increase buffer size for long sequence lines
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024) // 10MB max line

	var currentChrom string
	var currentSeq strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, ">") {
			if currentChrom != "" && currentSeq.Len() > 0 {
				g.sequences[currentChrom] = currentSeq.String()
			}

			currentChrom = parseHeader(line)
			currentSeq.Reset()
		} else {
			currentSeq.WriteString(strings.TrimSpace(line))
		}
	}

	if currentChrom != "" && currentSeq.Len() > 0 {
		g.sequences[currentChrom] = currentSeq.String()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan FASTA: %w", err)
	}

	return nil
}

// parseHeader extracts the chromosome name from a FASTA header line.
func parseHeader(header string) string {
	header = strings.TrimPrefix(header, ">")
	if idx := strings.IndexAny(header, " \t"); idx != -1 {
		header = header[:idx]
	}
	return header
}

// Fetch returns the sequence over the 0-based half-open interval
// [start, end) on the given chromosome. Unknown chromosomes and
// out-of-range coordinates are errors.
func (g *Genome) Fetch(chrom string, start, end int64) (string, error) {
	seq, ok := g.lookup(chrom)
	if !ok {
		return "", fmt.Errorf("unknown chromosome %q", chrom)
	}

	if start < 0 || end > int64(len(seq)) || start >= end {
		return "", fmt.Errorf("range %d-%d out of bounds for chromosome %q (length %d)",
			start, end, chrom, len(seq))
	}

	return seq[start:end], nil
}

// lookup finds a chromosome sequence, retrying with the "chr" prefix
// added or stripped.
func (g *Genome) lookup(chrom string) (string, bool) {
	if seq, ok := g.sequences[chrom]; ok {
		return seq, true
	}
	if strings.HasPrefix(chrom, "chr") {
		seq, ok := g.sequences[chrom[3:]]
		return seq, ok
	}
	seq, ok := g.sequences["chr"+chrom]
	return seq, ok
}

// SequenceCount returns the number of loaded chromosomes.
func (g *Genome) SequenceCount() int {
	return len(g.sequences)
}

// HasChrom checks if a sequence exists for the given chromosome.
func (g *Genome) HasChrom(chrom string) bool {
	_, ok := g.lookup(chrom)
	return ok
}
