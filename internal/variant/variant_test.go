package variant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		id       string
		expected Variant
	}{
		{"1-100-A-T", Variant{Chrom: "1", Pos: 100, Ref: "A", Alt: "T"}},
		{"chr12-25245351-C-A", Variant{Chrom: "chr12", Pos: 25245351, Ref: "C", Alt: "A"}},
		{"X-2781479-ATG-A", Variant{Chrom: "X", Pos: 2781479, Ref: "ATG", Alt: "A"}},
		{"1-100-A-*", Variant{Chrom: "1", Pos: 100, Ref: "A", Alt: "*"}},
		// Bare dash sentinel collides with the field separator
		{"1-100-A--", Variant{Chrom: "1", Pos: 100, Ref: "A", Alt: "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, err := Parse(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"too few fields", "1-100-A"},
		{"too many fields", "1-100-A-T-G"},
		{"non-integer position", "1-abc-A-T"},
		{"float position", "1-100.5-A-T"},
		{"empty ref", "1-100--T"},
		{"empty chrom", "-100-A-T"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.id)
			require.Error(t, err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
		})
	}
}

func TestID_RoundTrip(t *testing.T) {
	ids := []string{
		"1-100-A-T",
		"chr12-25245351-C-A",
		"X-2781479-ATG-A",
		"1-100-A-*",
	}

	for _, id := range ids {
		v, err := Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, v.ID())
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		id                                        string
		snv, indel, insertion, deletion, sentinel bool
	}{
		{"1-100-A-T", true, false, false, false, false},
		{"1-100-A-AG", false, true, true, false, false},
		{"1-100-ATG-A", false, true, false, true, false},
		{"1-100-A-*", false, true, false, true, true},
		{"1-100-A--", false, true, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			v, err := Parse(tt.id)
			require.NoError(t, err)

			assert.Equal(t, tt.snv, v.IsSNV(), "IsSNV")
			assert.Equal(t, tt.indel, v.IsIndel(), "IsIndel")
			assert.Equal(t, tt.insertion, v.IsInsertion(), "IsInsertion")
			assert.Equal(t, tt.deletion, v.IsDeletion(), "IsDeletion")
			assert.Equal(t, tt.sentinel, v.IsSentinelDeletion(), "IsSentinelDeletion")
		})
	}
}

func TestNormalizeChrom(t *testing.T) {
	tests := []struct {
		chrom    string
		expected string
	}{
		{"chr12", "12"},
		{"12", "12"},
		{"chrX", "X"},
		{"chr", "chr"},
	}

	for _, tt := range tests {
		v := Variant{Chrom: tt.chrom}
		assert.Equal(t, tt.expected, v.NormalizeChrom())
	}
}
