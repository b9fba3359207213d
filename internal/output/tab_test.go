package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logust79/varnorm/internal/variant"
)

func TestTabWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())

	orig := variant.Variant{Chrom: "1", Pos: 100, Ref: "CTCC", Alt: "CCC"}
	norm := variant.Variant{Chrom: "1", Pos: 100, Ref: "CT", Alt: "C"}
	require.NoError(t, w.Write(orig, norm))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "#Uploaded_variation\tLocation\tRef\tAlt\tNormalized_variation\tNormalized_location", lines[0])
	assert.Equal(t, "1-100-CTCC-CCC\t1:100\tCTCC\tCCC\t1-100-CT-C\t1:100", lines[1])
}

func TestTabWriter_MultipleRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewTabWriter(&buf)

	require.NoError(t, w.WriteHeader())

	pairs := []struct{ orig, norm variant.Variant }{
		{
			variant.Variant{Chrom: "1", Pos: 100, Ref: "ATG", Alt: "ATC"},
			variant.Variant{Chrom: "1", Pos: 102, Ref: "G", Alt: "C"},
		},
		{
			variant.Variant{Chrom: "X", Pos: 500, Ref: "A", Alt: "T"},
			variant.Variant{Chrom: "X", Pos: 500, Ref: "A", Alt: "T"},
		},
	}

	for _, p := range pairs {
		require.NoError(t, w.Write(p.orig, p.norm))
	}
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "1-102-G-C")
	assert.Contains(t, lines[2], "X-500-A-T")
}

func TestPlainWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPlainWriter(&buf)

	require.NoError(t, w.WriteHeader())

	orig := variant.Variant{Chrom: "1", Pos: 100, Ref: "GACCCT", Alt: "GACT"}
	norm := variant.Variant{Chrom: "1", Pos: 101, Ref: "ACC", Alt: "A"}
	require.NoError(t, w.Write(orig, norm))
	require.NoError(t, w.Flush())

	// No header, just the normalized identifier
	assert.Equal(t, "1-101-ACC-A\n", buf.String())
}

func TestWriterInterface(t *testing.T) {
	var _ Writer = NewTabWriter(&bytes.Buffer{})
	var _ Writer = NewPlainWriter(&bytes.Buffer{})
}
