// Copyright (c) 2026 Maqala. All rights reserved.

/*
Article persistence on PostgreSQL.

The article aggregate maps to a single row: scalar fields live in typed
columns, while the nested structures (content blocks, featured image, meta,
series reference, dual-language overlays, translation provenance) are stored
as jsonb documents. This keeps the whole aggregate readable and writable in
one round-trip, which is what makes the translation flow's single-statement
upsert possible.
*/
package article

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maqalahq/maqala/internal/platform/database/schema"
	"github.com/maqalahq/maqala/internal/platform/dberr"
)

// resourceName is used in client-facing not-found and conflict messages.
const resourceName = "Article"

// # PostgreSQL Repository

// repository implements the [Repository] interface using pgx.
type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed article store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

// selectColumns renders the full column list with a table alias prefix.
func selectColumns(alias string) string {
	columns := schema.ContentArticle.Columns()
	prefixed := make([]string, len(columns))
	for i, column := range columns {
		prefixed[i] = alias + "." + column
	}
	return strings.Join(prefixed, ", ")
}

// rowScanner abstracts pgx.Row and pgx.Rows for the shared scan path.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle hydrates one article row. Extra destinations (e.g. a window
// function total) are appended after the entity columns.
func scanArticle(row rowScanner, extra ...any) (*Article, error) {
	target := &Article{}
	var (
		contentJSON       []byte
		featuredImageJSON []byte
		seriesJSON        []byte
		metaJSON          []byte
		dualJSON          []byte
		dualAuthorJSON    []byte
		dualTitleJSON     []byte
		dualSubtitleJSON  []byte
		translationsJSON  []byte
	)

	dest := []any{
		&target.ID,
		&target.Slug,
		&target.Language,
		&target.Title,
		&target.Subtitle,
		&target.Excerpt,
		&target.Author,
		&contentJSON,
		&featuredImageJSON,
		&target.Categories,
		&seriesJSON,
		&metaJSON,
		&target.Status,
		&target.IsFeatured,
		&target.IsLatest,
		&target.Views,
		&target.Shares,
		&target.ReadingTime,
		&dualJSON,
		&dualAuthorJSON,
		&dualTitleJSON,
		&dualSubtitleJSON,
		&translationsJSON,
		&target.CreatedAt,
		&target.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	documents := []struct {
		data []byte
		into any
	}{
		{contentJSON, &target.Content},
		{featuredImageJSON, &target.FeaturedImage},
		{seriesJSON, &target.Series},
		{metaJSON, &target.Meta},
		{dualJSON, &target.DualLanguage},
		{dualAuthorJSON, &target.DualLanguageAuthor},
		{dualTitleJSON, &target.DualLanguageTitle},
		{dualSubtitleJSON, &target.DualLanguageSubtitle},
		{translationsJSON, &target.Translations},
	}
	for _, document := range documents {
		if len(document.data) == 0 {
			continue
		}
		if err := json.Unmarshal(document.data, document.into); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal article document: %w", err)
		}
	}

	return target, nil
}

// writeArgs marshals the aggregate into the positional argument list matching
// [schema.ContentArticleTable.Columns]. Nil maps and references become SQL
// NULLs so the row stays sparse.
func writeArgs(target *Article) ([]any, error) {
	contentJSON, err := json.Marshal(target.Content)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to marshal content: %w", err)
	}
	featuredImageJSON, err := json.Marshal(target.FeaturedImage)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to marshal featured image: %w", err)
	}
	metaJSON, err := json.Marshal(target.Meta)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to marshal meta: %w", err)
	}

	seriesJSON, err := marshalOptional(target.Series != nil, target.Series)
	if err != nil {
		return nil, err
	}
	dualJSON, err := marshalOptional(len(target.DualLanguage) > 0, target.DualLanguage)
	if err != nil {
		return nil, err
	}
	dualAuthorJSON, err := marshalOptional(len(target.DualLanguageAuthor) > 0, target.DualLanguageAuthor)
	if err != nil {
		return nil, err
	}
	dualTitleJSON, err := marshalOptional(len(target.DualLanguageTitle) > 0, target.DualLanguageTitle)
	if err != nil {
		return nil, err
	}
	dualSubtitleJSON, err := marshalOptional(len(target.DualLanguageSubtitle) > 0, target.DualLanguageSubtitle)
	if err != nil {
		return nil, err
	}
	translationsJSON, err := marshalOptional(len(target.Translations) > 0, target.Translations)
	if err != nil {
		return nil, err
	}

	// pgx encodes a nil slice as SQL NULL, and the column is NOT NULL with a
	// default that never applies when the INSERT names it. An article without
	// categories must land as an empty array.
	categories := target.Categories
	if categories == nil {
		categories = []string{}
	}

	return []any{
		target.ID,
		target.Slug,
		string(target.Language),
		target.Title,
		target.Subtitle,
		target.Excerpt,
		target.Author,
		contentJSON,
		featuredImageJSON,
		categories,
		seriesJSON,
		metaJSON,
		string(target.Status),
		target.IsFeatured,
		target.IsLatest,
		target.Views,
		target.Shares,
		target.ReadingTime,
		dualJSON,
		dualAuthorJSON,
		dualTitleJSON,
		dualSubtitleJSON,
		translationsJSON,
		target.CreatedAt,
		target.UpdatedAt,
	}, nil
}

// marshalOptional returns a jsonb payload, or nil (SQL NULL) when absent.
func marshalOptional(present bool, value any) ([]byte, error) {
	if !present {
		return nil, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to marshal article document: %w", err)
	}
	return data, nil
}

// # Repository Implementation

/*
List returns a filtered, paginated slice of articles and the total count.

Description: Uses a COUNT(*) OVER() window function to retrieve the total
record count without a second query, with a dynamically built WHERE clause
covering language, status, category membership, series, author, and the
editorial flags.

Parameters:
  - context: context.Context
  - filter: Filter (Language, status, category, series, author, flags, sort)
  - limit: int
  - offset: int

Returns:
  - []*Article: Slice of hydrated article entities
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *repository) List(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s a
		WHERE TRUE
	`, selectColumns("a"), schema.ContentArticle.Table))

	// Language Filtering
	if filter.Language != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.ContentArticle.Language, argID))
		args = append(args, string(filter.Language))
		argID++
	}

	// Status Filtering
	if len(filter.Status) > 0 {
		statuses := make([]string, len(filter.Status))
		for i, status := range filter.Status {
			statuses[i] = string(status)
		}
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = ANY($%d)", schema.ContentArticle.Status, argID))
		args = append(args, statuses)
		argID++
	}

	// Category Membership Filtering
	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND $%d = ANY(a.%s)", argID, schema.ContentArticle.Categories))
		args = append(args, filter.Category)
		argID++
	}

	// Series Filtering (series reference is a jsonb document)
	if filter.SeriesID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s->>'id' = $%d", schema.ContentArticle.Series, argID))
		args = append(args, filter.SeriesID)
		argID++
	}

	// Author Filtering
	if filter.Author != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.ContentArticle.Author, argID))
		args = append(args, filter.Author)
		argID++
	}

	// Editorial Flag Filtering
	if filter.IsFeatured != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.ContentArticle.IsFeatured, argID))
		args = append(args, *filter.IsFeatured)
		argID++
	}
	if filter.IsLatest != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.ContentArticle.IsLatest, argID))
		args = append(args, *filter.IsLatest)
		argID++
	}

	// Apply Sorting Logic
	sort := fmt.Sprintf("a.%s", schema.ContentArticle.CreatedAt) // default
	switch filter.Sort {
	// Popularity
	case "popular":
		sort = fmt.Sprintf("a.%s", schema.ContentArticle.Views)
	// Share Count
	case "shares":
		sort = fmt.Sprintf("a.%s", schema.ContentArticle.Shares)
	// Latest
	case "latest":
		sort = fmt.Sprintf("a.%s", schema.ContentArticle.CreatedAt)
	}

	// Apply Sorting Direction
	sortDir := "DESC"
	if strings.ToLower(filter.SortDir) == "asc" {
		sortDir = "ASC"
	}

	// Apply Sorting
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, a.%s DESC", sort, sortDir, schema.ContentArticle.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*Article
	var totalCount int

	for rows.Next() {
		target, err := scanArticle(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan article: %w", err)
		}
		articles = append(articles, target)
	}

	return articles, totalCount, rows.Err()
}

/*
FindByID retrieves an article by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - *Article: The fully hydrated aggregate
  - error: apperr NOT_FOUND if the row does not exist
*/
func (repository *repository) FindByID(context context.Context, id string) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s a
		WHERE a.%s = $1
	`, selectColumns("a"), schema.ContentArticle.Table, schema.ContentArticle.ID)

	target, err := scanArticle(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return target, nil
}

/*
FindBySlugLanguage retrieves an article by its compound natural key.

Parameters:
  - context: context.Context
  - slug: string
  - language: Language

Returns:
  - *Article: The fully hydrated aggregate
  - error: apperr NOT_FOUND if no row matches the pair exactly
*/
func (repository *repository) FindBySlugLanguage(context context.Context, slug string, language Language) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s a
		WHERE a.%s = $1 AND a.%s = $2
	`, selectColumns("a"), schema.ContentArticle.Table,
		schema.ContentArticle.Slug, schema.ContentArticle.Language)

	target, err := scanArticle(repository.pool.QueryRow(context, query, slug, string(language)))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return target, nil
}

/*
FindBySlugWithOverlay retrieves an article whose dual-language overlay carries
the requested language.

Description: Serves the read fallback for bilingual slugs: when no record has
the requested language as its primary, a record carrying that language as an
overlay block still satisfies the read. Uses the jsonb key-existence check on
the overlay document.

Parameters:
  - context: context.Context
  - slug: string
  - language: Language (overlay key to require)

Returns:
  - *Article: The fully hydrated aggregate
  - error: apperr NOT_FOUND if no record carries the overlay
*/
func (repository *repository) FindBySlugWithOverlay(context context.Context, slug string, language Language) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s a
		WHERE a.%s = $1 AND jsonb_exists(a.%s, $2)
		ORDER BY a.%s DESC
		LIMIT 1
	`, selectColumns("a"), schema.ContentArticle.Table,
		schema.ContentArticle.Slug, schema.ContentArticle.DualLanguage,
		schema.ContentArticle.UpdatedAt)

	target, err := scanArticle(repository.pool.QueryRow(context, query, slug, string(language)))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return target, nil
}

/*
Create persists a new article row.

Parameters:
  - context: context.Context
  - target: *Article (Normalised aggregate with all derived fields set)

Returns:
  - error: apperr CONFLICT when the (slug, language) pair already exists
*/
func (repository *repository) Create(context context.Context, target *Article) error {
	columns := schema.ContentArticle.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
	`, schema.ContentArticle.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	args, err := writeArgs(target)
	if err != nil {
		return err
	}

	if _, err := repository.pool.Exec(context, query, args...); err != nil {
		return dberr.Wrap(err, resourceName)
	}
	return nil
}

/*
Update replaces the mutable columns of an existing article row.

Parameters:
  - context: context.Context
  - target: *Article (Merged aggregate carrying the target ID)

Returns:
  - error: apperr NOT_FOUND if the ID no longer resolves, apperr CONFLICT on
    a slug/language collision introduced by the update
*/
func (repository *repository) Update(context context.Context, target *Article) error {
	columns := schema.ContentArticle.Columns()

	// Column 1 is the immutable ID used in the WHERE clause; createdat is
	// likewise never rewritten.
	assignments := make([]string, 0, len(columns))
	argID := 2
	for _, column := range columns[1:] {
		if column == schema.ContentArticle.CreatedAt {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	query := fmt.Sprintf(`
		UPDATE %s SET %s WHERE %s = $1
	`, schema.ContentArticle.Table, strings.Join(assignments, ", "), schema.ContentArticle.ID)

	allArgs, err := writeArgs(target)
	if err != nil {
		return err
	}

	// Reorder to [id, mutable columns...], dropping createdat (index 23).
	args := []any{allArgs[0]}
	for i, column := range columns {
		if i == 0 || column == schema.ContentArticle.CreatedAt {
			continue
		}
		args = append(args, allArgs[i])
	}

	tag, err := repository.pool.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName)
	}
	return nil
}

/*
Upsert atomically inserts or refreshes the row keyed by (slug, language).

Description: The single INSERT ... ON CONFLICT statement is the concurrency
guarantee for the persisted translation flow: two simultaneous translation
requests for the same slug and target language race into one row instead of
two. On conflict the existing row keeps its identity (id, createdat) and
takes the incoming content and counters; the persisted identity is read back
via RETURNING and written onto target, so the caller always holds the row
that actually exists.

Parameters:
  - context: context.Context
  - target: *Article (Sibling aggregate; ID and CreatedAt are hydrated from
    the persisted row)

Returns:
  - error: Storage failures
*/
func (repository *repository) Upsert(context context.Context, target *Article) error {
	columns := schema.ContentArticle.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// Every column except the identity trio (id, slug, language) and the
	// original creation stamp is refreshed from the incoming row.
	assignments := make([]string, 0, len(columns))
	for _, column := range columns {
		switch column {
		case schema.ContentArticle.ID,
			schema.ContentArticle.Slug,
			schema.ContentArticle.Language,
			schema.ContentArticle.CreatedAt:
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES (%s)
		ON CONFLICT (%s, %s) DO UPDATE SET %s
		RETURNING %s, %s
	`, schema.ContentArticle.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "),
		schema.ContentArticle.Slug, schema.ContentArticle.Language, strings.Join(assignments, ", "),
		schema.ContentArticle.ID, schema.ContentArticle.CreatedAt)

	args, err := writeArgs(target)
	if err != nil {
		return err
	}

	// On the conflict path the row keeps its original id and createdat, not
	// the ones carried by the freshly built sibling.
	if err := repository.pool.QueryRow(context, query, args...).Scan(&target.ID, &target.CreatedAt); err != nil {
		return dberr.Wrap(err, resourceName)
	}
	return nil
}

/*
Delete removes an article row permanently.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - error: apperr NOT_FOUND if the ID does not resolve
*/
func (repository *repository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1
	`, schema.ContentArticle.Table, schema.ContentArticle.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName)
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName)
	}
	return nil
}

/*
IncrementViews atomically adds one to the view counter.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - int64: The counter value after the increment
  - error: apperr NOT_FOUND if the ID does not resolve
*/
func (repository *repository) IncrementViews(context context.Context, id string) (int64, error) {
	return repository.incrementCounter(context, id, schema.ContentArticle.Views)
}

/*
IncrementShares atomically adds one to the share counter.

Parameters:
  - context: context.Context
  - id: string (UUID primary key)

Returns:
  - int64: The counter value after the increment
  - error: apperr NOT_FOUND if the ID does not resolve
*/
func (repository *repository) IncrementShares(context context.Context, id string) (int64, error) {
	return repository.incrementCounter(context, id, schema.ContentArticle.Shares)
}

// incrementCounter performs a single-statement relative update so concurrent
// increments never lose counts.
func (repository *repository) incrementCounter(context context.Context, id, column string) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + 1 WHERE %s = $1 RETURNING %s
	`, schema.ContentArticle.Table, column, column, schema.ContentArticle.ID, column)

	var value int64
	if err := repository.pool.QueryRow(context, query, id).Scan(&value); err != nil {
		return 0, dberr.Wrap(err, resourceName)
	}
	return value, nil
}
