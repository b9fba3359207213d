// Package normalize rewrites indel variant representations into their
// minimal left- or right-aligned canonical form.
package normalize

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/logust79/varnorm/internal/variant"
)

// ReferenceAccessor defines the interface for fetching reference genome
// sequence over a 0-based half-open interval [start, end).
type ReferenceAccessor interface {
	Fetch(chrom string, start, end int64) (string, error)
}

// Normalizer rewrites variants into canonical minimal form. The zero-value
// direction is left alignment; sentinel deletions additionally need a
// reference accessor to materialize the anchor base.
type Normalizer struct {
	reference ReferenceAccessor
	logger    *zap.Logger
}

// NewNormalizer creates a normalizer. The accessor may be nil, in which
// case sentinel deletion notations cannot be normalized.
func NewNormalizer(reference ReferenceAccessor) *Normalizer {
	return &Normalizer{
		reference: reference,
		logger:    zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and debug messages.
func (n *Normalizer) SetLogger(l *zap.Logger) {
	n.logger = l
}

// Normalize parses a "chrom-pos-ref-alt" identifier, normalizes it and
// re-serializes the result. leftAlign selects the trimming direction:
// true anchors the variant at the lowest coordinate, false at the highest.
func (n *Normalizer) Normalize(id string, leftAlign bool) (string, error) {
	v, err := variant.Parse(id)
	if err != nil {
		return "", err
	}

	norm, err := n.NormalizeVariant(v, leftAlign)
	if err != nil {
		return "", err
	}

	return norm.ID(), nil
}

// NormalizeVariant normalizes an already-parsed variant.
//
// Sentinel deletions ("*" or "-" alternate) are anchored on the reference
// base immediately upstream of the reported position; everything else is
// reduced by trimming the shared prefix and suffix of the two alleles,
// keeping at least one base on each side.
func (n *Normalizer) NormalizeVariant(v variant.Variant, leftAlign bool) (variant.Variant, error) {
	if v.IsSentinelDeletion() {
		return n.expandSentinel(v)
	}
	return trim(v, leftAlign), nil
}

// expandSentinel materializes the anchor base for a deletion written with a
// sentinel alternate. The base one position upstream of the variant is
// borrowed from the reference genome: position moves back by one, the base
// is prepended to the reference allele and becomes the whole alternate.
func (n *Normalizer) expandSentinel(v variant.Variant) (variant.Variant, error) {
	if n.reference == nil {
		return variant.Variant{}, &MissingReferenceError{Variant: v}
	}

	start, end := v.Pos-2, v.Pos-1
	base, err := n.reference.Fetch(v.Chrom, start, end)
	if err != nil {
		return variant.Variant{}, &AccessorError{Chrom: v.Chrom, Start: start, End: end, Err: err}
	}

	n.logger.Debug("expanded sentinel deletion",
		zap.String("variant", v.ID()),
		zap.String("anchor", base))

	return variant.Variant{
		Chrom: v.Chrom,
		Pos:   v.Pos - 1,
		Ref:   base + v.Ref,
		Alt:   base,
	}, nil
}

// trim reduces ref/alt to their minimal distinguishing core.
//
// The scan window is the length of the shorter allele. Left alignment fixes
// the tail boundary first: scan from the end for the first mismatch, then
// scan from the start until a mismatch or until either retained slice is
// down to a single base. Right alignment runs the start scan first and puts
// the single-base guard on the tail scan instead. The guard keeps both
// output alleles non-empty.
func trim(v variant.Variant, leftAlign bool) variant.Variant {
	ref, alt := v.Ref, v.Alt
	n := len(ref)
	if len(alt) < n {
		n = len(alt)
	}

	var b, refE, altE int

	if leftAlign {
		for e := 0; e < n; e++ {
			refE = len(ref) - e - 1
			altE = len(alt) - e - 1
			if ref[refE] != alt[altE] {
				break
			}
		}
		for i := 0; i < n; i++ {
			b = i
			if ref[b] != alt[b] || refE-b+1 == 1 || altE-b+1 == 1 {
				break
			}
		}
	} else {
		for i := 0; i < n; i++ {
			b = i
			if ref[b] != alt[b] {
				break
			}
		}
		for e := 0; e < n; e++ {
			refE = len(ref) - e - 1
			altE = len(alt) - e - 1
			if ref[refE] != alt[altE] || refE-b+1 == 1 || altE-b+1 == 1 {
				break
			}
		}
	}

	return variant.Variant{
		Chrom: v.Chrom,
		Pos:   v.Pos + int64(b),
		Ref:   ref[b : refE+1],
		Alt:   alt[b : altE+1],
	}
}

// MissingReferenceError indicates a sentinel deletion was supplied without
// a reference accessor to resolve the anchor base.
type MissingReferenceError struct {
	Variant variant.Variant
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("variant %s: sentinel deletion requires a reference accessor", e.Variant.ID())
}

// AccessorError wraps a failure from the reference accessor.
type AccessorError struct {
	Chrom string
	Start int64
	End   int64
	Err   error
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("fetch reference %s:%d-%d: %v", e.Chrom, e.Start, e.End, e.Err)
}

func (e *AccessorError) Unwrap() error {
	return e.Err
}
