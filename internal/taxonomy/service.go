// Copyright (c) 2026 Maqala. All rights reserved.

package taxonomy

import (
	"context"
	"log/slog"
	"time"

	"github.com/maqalahq/maqala/internal/platform/validate"
	"github.com/maqalahq/maqala/pkg/slug"
	"github.com/maqalahq/maqala/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Categories

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategoryBySlug(context context.Context, categorySlug string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, categorySlug)
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required("name", category.Name).MaxLen("name", category.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if category.ID == "" {
		category.ID = uuid.New()
	}
	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created", slog.String("category_id", category.ID), slog.String("slug", category.Slug))
	return nil
}

func (service *Service) UpdateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required("name", category.Name).MaxLen("name", category.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}
	category.UpdatedAt = time.Now().UTC()

	if err := service.repo.UpdateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.String("category_id", category.ID))
	return nil
}

func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}
	service.logger.Warn("category_deleted", slog.String("category_id", id))
	return nil
}

// # Series

func (service *Service) ListSeries(context context.Context) ([]*Series, error) {
	return service.repo.ListSeries(context)
}

func (service *Service) GetSeriesBySlug(context context.Context, seriesSlug string) (*Series, error) {
	return service.repo.GetSeriesBySlug(context, seriesSlug)
}

func (service *Service) CreateSeries(context context.Context, series *Series) error {
	validator := &validate.Validator{}
	validator.Required("name", series.Name).MaxLen("name", series.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if series.ID == "" {
		series.ID = uuid.New()
	}
	if series.Slug == "" {
		series.Slug = slug.From(series.Name)
	}
	now := time.Now().UTC()
	series.CreatedAt = now
	series.UpdatedAt = now

	if err := service.repo.CreateSeries(context, series); err != nil {
		return err
	}

	service.logger.Info("series_created", slog.String("series_id", series.ID), slog.String("slug", series.Slug))
	return nil
}

func (service *Service) UpdateSeries(context context.Context, series *Series) error {
	validator := &validate.Validator{}
	validator.Required("name", series.Name).MaxLen("name", series.Name, 120)
	if err := validator.Err(); err != nil {
		return err
	}

	if series.Slug == "" {
		series.Slug = slug.From(series.Name)
	}
	series.UpdatedAt = time.Now().UTC()

	if err := service.repo.UpdateSeries(context, series); err != nil {
		return err
	}

	service.logger.Info("series_updated", slog.String("series_id", series.ID))
	return nil
}

func (service *Service) DeleteSeries(context context.Context, id string) error {
	if err := service.repo.DeleteSeries(context, id); err != nil {
		return err
	}
	service.logger.Warn("series_deleted", slog.String("series_id", id))
	return nil
}
