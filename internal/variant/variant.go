// Package variant provides the variant identifier type and its parsing.
package variant

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel alternate alleles marking a deletion with no explicit base.
const (
	SentinelStar = "*"
	SentinelDash = "-"
)

// Variant represents a single genomic variant parsed from a
// "chrom-pos-ref-alt" identifier string.
type Variant struct {
	Chrom string // Chromosome name (e.g., "12", "chr12")
	Pos   int64  // 1-based genomic position of the first base of Ref
	Ref   string // Reference allele
	Alt   string // Alternate allele, or a deletion sentinel ("*" or "-")
}

// Parse parses a variant identifier of the form "chrom-pos-ref-alt".
// A bare "-" alternate (deletion sentinel) is tolerated even though it
// collides with the field separator. Malformed input returns a *ParseError.
func Parse(id string) (Variant, error) {
	fields := strings.Split(id, "-")

	// "1-100-A--" splits into five fields with the last two empty.
	if len(fields) == 5 && fields[3] == "" && fields[4] == "" {
		fields = []string{fields[0], fields[1], fields[2], SentinelDash}
	}

	if len(fields) != 4 {
		return Variant{}, &ParseError{
			Input:   id,
			Message: fmt.Sprintf("expected 4 fields, found %d", len(fields)),
		}
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Variant{}, &ParseError{
			Input:   id,
			Message: fmt.Sprintf("invalid position: %s", fields[1]),
		}
	}

	v := Variant{
		Chrom: fields[0],
		Pos:   pos,
		Ref:   fields[2],
		Alt:   fields[3],
	}

	if v.Chrom == "" || v.Ref == "" || v.Alt == "" {
		return Variant{}, &ParseError{Input: id, Message: "empty field"}
	}

	return v, nil
}

// ID re-serializes the variant to its "chrom-pos-ref-alt" identifier.
func (v Variant) ID() string {
	return fmt.Sprintf("%s-%d-%s-%s", v.Chrom, v.Pos, v.Ref, v.Alt)
}

// IsSNV returns true if the variant is a single nucleotide variant.
func (v Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1 && !v.IsSentinelDeletion()
}

// IsIndel returns true if the variant is an insertion or deletion.
func (v Variant) IsIndel() bool {
	return v.IsSentinelDeletion() || len(v.Ref) != len(v.Alt)
}

// IsInsertion returns true if the variant is an insertion.
func (v Variant) IsInsertion() bool {
	return !v.IsSentinelDeletion() && len(v.Alt) > len(v.Ref)
}

// IsDeletion returns true if the variant is a deletion.
func (v Variant) IsDeletion() bool {
	return v.IsSentinelDeletion() || len(v.Ref) > len(v.Alt)
}

// IsSentinelDeletion returns true if the alternate allele is a deletion
// sentinel ("*" or "-") rather than a literal sequence.
func (v Variant) IsSentinelDeletion() bool {
	return v.Alt == SentinelStar || v.Alt == SentinelDash
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (v Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}

// ParseError represents an error parsing a variant identifier.
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse variant %q: %s", e.Input, e.Message)
}
