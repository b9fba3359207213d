package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/logust79/varnorm/internal/variant"
)

// Result pairs an input variant with its normalized form and the
// alignment direction it was produced under.
type Result struct {
	Original    variant.Variant
	Normalized  variant.Variant
	LeftAligned bool
}

// resultKey is the composite key for deduplicating results before writing.
type resultKey struct {
	chrom, ref, alt string
	pos             int64
	leftAligned     bool
}

// WriteResults batch-inserts normalization results into DuckDB using the
// Appender API. Duplicate (chrom, pos, ref, alt, left_aligned) entries are
// deduplicated before writing.
func (s *Store) WriteResults(results []Result) error {
	if len(results) == 0 {
		return nil
	}

	// Deduplicate by primary key (same variant appearing on multiple input lines)
	seen := make(map[resultKey]bool, len(results))
	deduped := make([]Result, 0, len(results))
	for _, r := range results {
		k := resultKey{r.Original.Chrom, r.Original.Ref, r.Original.Alt, r.Original.Pos, r.LeftAligned}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "normalized_variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			r.Original.Chrom, r.Original.Pos, r.Original.Ref, r.Original.Alt,
			r.Normalized.Chrom, r.Normalized.Pos, r.Normalized.Ref, r.Normalized.Alt,
			r.LeftAligned,
		); err != nil {
			return fmt.Errorf("append result: %w", err)
		}
	}

	return appender.Flush()
}

// Lookup queries DuckDB for a previously cached normalization of a variant.
// The second return value reports whether the variant was found.
func (s *Store) Lookup(v variant.Variant, leftAligned bool) (variant.Variant, bool, error) {
	row := s.db.QueryRow(`SELECT norm_chrom, norm_pos, norm_ref, norm_alt
		FROM normalized_variants
		WHERE chrom=? AND pos=? AND ref=? AND alt=? AND left_aligned=?`,
		v.Chrom, v.Pos, v.Ref, v.Alt, leftAligned)

	var norm variant.Variant
	err := row.Scan(&norm.Chrom, &norm.Pos, &norm.Ref, &norm.Alt)
	if err == sql.ErrNoRows {
		return variant.Variant{}, false, nil
	}
	if err != nil {
		return variant.Variant{}, false, fmt.Errorf("scan result: %w", err)
	}

	return norm, true, nil
}

// Count returns the number of cached results.
func (s *Store) Count() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM normalized_variants").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}

// Clear removes all cached results.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM normalized_variants")
	return err
}
