package normalize

import (
	"fmt"

	"github.com/logust79/varnorm/internal/variant"
)

// Span is the padded genomic interval covering a set of variants.
type Span struct {
	Chrom string
	Start int64
	Stop  int64
}

// String formats the span as "chrom:start-stop".
func (s Span) String() string {
	return fmt.Sprintf("%s:%d-%d", s.Chrom, s.Start, s.Stop)
}

// SpanOf computes the bounding interval of a group of variant identifiers,
// padded by one base on each side. The chromosome is taken from the first
// entry; the rest are not checked for consistency, so heterogeneous input
// silently produces a span on the first chromosome. Parse failures
// propagate.
func SpanOf(ids []string) (Span, error) {
	if len(ids) == 0 {
		return Span{}, fmt.Errorf("spanOf: no variants")
	}

	var span Span
	for i, id := range ids {
		v, err := variant.Parse(id)
		if err != nil {
			return Span{}, err
		}

		stop := v.Pos + int64(len(v.Ref))
		if i == 0 {
			span = Span{Chrom: v.Chrom, Start: v.Pos, Stop: stop}
			continue
		}
		if v.Pos < span.Start {
			span.Start = v.Pos
		}
		if stop > span.Stop {
			span.Stop = stop
		}
	}

	span.Start--
	span.Stop++
	return span, nil
}
