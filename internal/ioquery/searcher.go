// Package ioquery implements the Searcher interface: parameterized
// filtering over the species table with free-text matching through
// the FTS5 search index. This is an impure I/O package.
package ioquery

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/db"
	"github.com/morphdb/morphdb/pkg/lifecycle"
	"github.com/morphdb/morphdb/pkg/schema"
)

// freeTextColumns is the fixed set of text columns free-text queries
// match against, for both the FTS path and the substring fallback.
var freeTextColumns = []string{
	"species_name", "leaf_shape", "fruit_shape",
}

// searcher implements the lifecycle.Searcher interface.
type searcher struct {
	operator db.Operator
}

// New creates a new Searcher on top of a connected operator.
func New(op db.Operator) lifecycle.Searcher {
	return &searcher{operator: op}
}

// Search returns records matching the free-text query and per-field
// constraints, ANDed, ordered by natural key ascending. Filter field
// names are validated before any SQL is built from them.
func (s *searcher) Search(
	ctx context.Context,
	query string,
	filters map[string]string,
	limit int,
) ([]schema.Species, error) {
	sqlDB := s.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	if err := catalog.ValidateFilters(filters); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)

	res, err := s.run(ctx, query, filters, limit, true)
	if err != nil && query != "" {
		// A prefix query the FTS tokenizer rejects (stray operators,
		// unbalanced quotes) falls back to plain substring matching.
		slog.Debug("FTS query failed, falling back to substring match",
			"query", query, "error", err)
		res, err = s.run(ctx, query, filters, limit, false)
	}
	if err != nil {
		return nil, SearchError(err)
	}
	return res, nil
}

// run builds and executes one search statement. When useFTS is true
// the free-text clause goes through the search index with prefix
// matching; otherwise it is a LIKE clause over the same columns.
func (s *searcher) run(
	ctx context.Context,
	query string,
	filters map[string]string,
	limit int,
	useFTS bool,
) ([]schema.Species, error) {
	sqlDB := s.operator.DB()

	stmt := `SELECT ` + iostore.SelectCols + ` FROM species WHERE 1=1`
	var args []any

	if query != "" {
		if useFTS {
			stmt += ` AND id IN
				(SELECT rowid FROM species_fts WHERE species_fts MATCH ?)`
			args = append(args, ftsQuery(query))
		} else {
			var likes []string
			for _, col := range freeTextColumns {
				likes = append(likes, col+" LIKE ?")
				args = append(args, "%"+query+"%")
			}
			stmt += ` AND (` + strings.Join(likes, " OR ") + `)`
		}
	}

	// Deterministic clause order keeps statements cacheable.
	for _, column := range slices.Sorted(maps.Keys(filters)) {
		f, _ := catalog.FieldByColumn(column)
		value := filters[column]
		switch f.Kind {
		case catalog.KindNumeric, catalog.KindInteger:
			num, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
			stmt += ` AND ` + column + ` >= ?`
			args = append(args, num)
		default:
			stmt += ` AND ` + column + ` LIKE ?`
			args = append(args, "%"+value+"%")
		}
	}

	stmt += ` ORDER BY species_name`
	if limit > 0 {
		stmt += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := sqlDB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []schema.Species
	for rows.Next() {
		sp, err := iostore.ScanSpecies(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *sp)
	}
	return res, rows.Err()
}

// ftsQuery turns free text into an FTS5 prefix query restricted to
// the free-text columns: each term is quoted and given a prefix
// wildcard.
func ftsQuery(query string) string {
	words := strings.Fields(query)
	for i, w := range words {
		w = strings.Trim(w, `"`)
		words[i] = `"` + w + `"*`
	}
	return fmt.Sprintf("{%s} : (%s)",
		strings.Join(freeTextColumns, " "),
		strings.Join(words, " "))
}
