// Copyright (c) 2026 Maqala. All rights reserved.

package taxonomy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maqalahq/maqala/internal/platform/database/schema"
	"github.com/maqalahq/maqala/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Categories

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.NameAr,
		schema.ContentCategory.Slug, schema.ContentCategory.Description,
		schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
		schema.ContentCategory.Table, schema.ContentCategory.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.NameAr,
			&category.Slug, &category.Description, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "Category")
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.NameAr,
		schema.ContentCategory.Slug, schema.ContentCategory.Description,
		schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt,
		schema.ContentCategory.Table, schema.ContentCategory.Slug)

	category := &Category{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&category.ID, &category.Name, &category.NameAr,
		&category.Slug, &category.Description, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	return category, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.ContentCategory.Table,
		schema.ContentCategory.ID, schema.ContentCategory.Name, schema.ContentCategory.NameAr,
		schema.ContentCategory.Slug, schema.ContentCategory.Description,
		schema.ContentCategory.CreatedAt, schema.ContentCategory.UpdatedAt)

	_, err := repository.db.Exec(context, query,
		category.ID, category.Name, category.NameAr,
		category.Slug, category.Description, category.CreatedAt, category.UpdatedAt)
	return dberr.Wrap(err, "Category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, category *Category) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1`,
		schema.ContentCategory.Table,
		schema.ContentCategory.Name, schema.ContentCategory.NameAr,
		schema.ContentCategory.Slug, schema.ContentCategory.Description,
		schema.ContentCategory.UpdatedAt, schema.ContentCategory.ID)

	tag, err := repository.db.Exec(context, query,
		category.ID, category.Name, category.NameAr,
		category.Slug, category.Description, category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Category")
	}
	return nil
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentCategory.Table, schema.ContentCategory.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Category")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Category")
	}
	return nil
}

// # Series

func (repository *PostgresRepository) ListSeries(context context.Context) ([]*Series, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.ContentSeries.ID, schema.ContentSeries.Name, schema.ContentSeries.NameAr,
		schema.ContentSeries.Slug, schema.ContentSeries.Description,
		schema.ContentSeries.CreatedAt, schema.ContentSeries.UpdatedAt,
		schema.ContentSeries.Table, schema.ContentSeries.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Series")
	}
	defer rows.Close()

	collection := make([]*Series, 0)
	for rows.Next() {
		series := &Series{}
		if err := rows.Scan(&series.ID, &series.Name, &series.NameAr,
			&series.Slug, &series.Description, &series.CreatedAt, &series.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "Series")
		}
		collection = append(collection, series)
	}
	return collection, rows.Err()
}

func (repository *PostgresRepository) GetSeriesBySlug(context context.Context, slug string) (*Series, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.ContentSeries.ID, schema.ContentSeries.Name, schema.ContentSeries.NameAr,
		schema.ContentSeries.Slug, schema.ContentSeries.Description,
		schema.ContentSeries.CreatedAt, schema.ContentSeries.UpdatedAt,
		schema.ContentSeries.Table, schema.ContentSeries.Slug)

	series := &Series{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&series.ID, &series.Name, &series.NameAr,
		&series.Slug, &series.Description, &series.CreatedAt, &series.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "Series")
	}
	return series, nil
}

func (repository *PostgresRepository) CreateSeries(context context.Context, series *Series) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.ContentSeries.Table,
		schema.ContentSeries.ID, schema.ContentSeries.Name, schema.ContentSeries.NameAr,
		schema.ContentSeries.Slug, schema.ContentSeries.Description,
		schema.ContentSeries.CreatedAt, schema.ContentSeries.UpdatedAt)

	_, err := repository.db.Exec(context, query,
		series.ID, series.Name, series.NameAr,
		series.Slug, series.Description, series.CreatedAt, series.UpdatedAt)
	return dberr.Wrap(err, "Series")
}

func (repository *PostgresRepository) UpdateSeries(context context.Context, series *Series) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6 WHERE %s = $1`,
		schema.ContentSeries.Table,
		schema.ContentSeries.Name, schema.ContentSeries.NameAr,
		schema.ContentSeries.Slug, schema.ContentSeries.Description,
		schema.ContentSeries.UpdatedAt, schema.ContentSeries.ID)

	tag, err := repository.db.Exec(context, query,
		series.ID, series.Name, series.NameAr,
		series.Slug, series.Description, series.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Series")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Series")
	}
	return nil
}

func (repository *PostgresRepository) DeleteSeries(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentSeries.Table, schema.ContentSeries.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "Series")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "Series")
	}
	return nil
}
