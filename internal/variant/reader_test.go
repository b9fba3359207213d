package variant

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var ids []string
	for {
		id, err := r.Next()
		require.NoError(t, err)
		if id == "" {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

func TestReader_File(t *testing.T) {
	r, err := NewReader(filepath.Join("testdata", "variants.txt"))
	require.NoError(t, err)
	defer r.Close()

	ids := readAll(t, r)
	assert.Equal(t, []string{"1-100-A-T", "1-105-GG-G", "chr12-25245351-C-A"}, ids)
}

func TestReader_Gzip(t *testing.T) {
	r, err := NewReader(filepath.Join("testdata", "variants.txt.gz"))
	require.NoError(t, err)
	defer r.Close()

	ids := readAll(t, r)
	assert.Equal(t, []string{"1-100-A-T", "1-105-GG-G", "chr12-25245351-C-A"}, ids)
}

func TestReader_SkipsCommentsAndBlanks(t *testing.T) {
	input := "# header comment\n\n  \n1-100-A-T\n# trailing comment\n"
	r := NewReaderFrom(strings.NewReader(input))

	ids := readAll(t, r)
	assert.Equal(t, []string{"1-100-A-T"}, ids)
}

func TestReader_NoTrailingNewline(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("1-100-A-T\n1-105-GG-G"))

	ids := readAll(t, r)
	assert.Equal(t, []string{"1-100-A-T", "1-105-GG-G"}, ids)
}

func TestReader_Empty(t *testing.T) {
	r := NewReaderFrom(strings.NewReader(""))

	id, err := r.Next()
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestReader_LineNumber(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("# comment\n1-100-A-T\n"))

	id, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "1-100-A-T", id)
	assert.Equal(t, 2, r.LineNumber())
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join("testdata", "does_not_exist.txt"))
	require.Error(t, err)
}
