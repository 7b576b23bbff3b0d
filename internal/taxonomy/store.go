// Copyright (c) 2026 Maqala. All rights reserved.

package taxonomy

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, category *Category) error
	UpdateCategory(context context.Context, category *Category) error
	DeleteCategory(context context.Context, id string) error

	ListSeries(context context.Context) ([]*Series, error)
	GetSeriesBySlug(context context.Context, slug string) (*Series, error)
	CreateSeries(context context.Context, series *Series) error
	UpdateSeries(context context.Context, series *Series) error
	DeleteSeries(context context.Context, id string) error
}
