package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/explorio/booking-service/internal/domain"
	"github.com/explorio/booking-service/pkg/dbmetrics"
	"github.com/explorio/booking-service/pkg/psqlbuilder"
	"github.com/explorio/booking-service/pkg/types"
)

// Repository каталог, читающий данные из PostgreSQL
// Каталог read-only: репозиторий выполняет только SELECT'ы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var activityColumns = []string{
	"id",
	"name",
	"category",
	"city",
	"provider_id",
	"currency",
	"price",
	"durations",
	"duration",
	"distance",
	"description",
	"whats_included",
	"what_to_bring",
	"images",
}

// FindActivity возвращает активность по id
func (r *Repository) FindActivity(ctx context.Context, id string) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(activityColumns...).
		From("activities").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActivity - build select query: %v", ErrBuildQuery, err)
	}

	activity, err := scanActivity(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActivity - scan activity: %v", ErrScanRow, err)
	}

	return activity, nil
}

// ListActivities возвращает активности, удовлетворяющие фильтру
func (r *Repository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(activityColumns...).From("activities")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"category": pattern},
		})
	}
	if len(filter.Categories) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": filter.Categories})
	}
	if len(filter.Cities) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": filter.Cities})
	}
	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}

	switch filter.Sort {
	case domain.SortPriceDesc:
		selectBuilder = selectBuilder.OrderBy("price DESC")
	case domain.SortDistance:
		selectBuilder = selectBuilder.OrderBy("distance ASC")
	default:
		selectBuilder = selectBuilder.OrderBy("price ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActivities - scan activity: %v", ErrScanRow, err)
		}
		activities = append(activities, *activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActivities - iterate rows: %v", ErrScanRow, err)
	}

	return activities, nil
}

// FindProvider возвращает провайдера по id
func (r *Repository) FindProvider(ctx context.Context, id string) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"image",
		"description",
		"distance",
		"opening_hours",
		"activity_ids",
	).
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindProvider - build select query: %v", ErrBuildQuery, err)
	}

	var provider domain.Provider
	var openingHoursRaw []byte

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.Name,
		&provider.Address,
		&provider.Image,
		&provider.Description,
		&provider.Distance,
		&openingHoursRaw,
		pq.Array(&provider.ActivityIDs),
	)
	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindProvider - scan provider: %v", ErrScanRow, err)
	}

	// opening_hours хранится как jsonb: {"Monday": "09:00 - 18:00", ...}
	if len(openingHoursRaw) > 0 {
		if err := json.Unmarshal(openingHoursRaw, &provider.OpeningHours); err != nil {
			return nil, fmt.Errorf("%w: FindProvider - decode opening hours: %v", ErrScanRow, err)
		}
	}

	return &provider, nil
}

// ListAddOns возвращает глобальный список add-on'ов
func (r *Repository) ListAddOns(ctx context.Context) ([]domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "description", "image").
		From("addons").
		OrderBy("price DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddOns - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddOns - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var addOns []domain.AddOn
	for rows.Next() {
		var addOn domain.AddOn
		if err := rows.Scan(&addOn.ID, &addOn.Name, &addOn.Price, &addOn.Description, &addOn.Image); err != nil {
			return nil, fmt.Errorf("%w: ListAddOns - scan addon: %v", ErrScanRow, err)
		}
		addOns = append(addOns, addOn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAddOns - iterate rows: %v", ErrScanRow, err)
	}

	return addOns, nil
}

// ListBundles возвращает список промо-бандлов
func (r *Repository) ListBundles(ctx context.Context) ([]domain.Bundle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("name", "description").
		From("bundles").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBundles - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBundles - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bundles []domain.Bundle
	for rows.Next() {
		var bundle domain.Bundle
		if err := rows.Scan(&bundle.Name, &bundle.Description); err != nil {
			return nil, fmt.Errorf("%w: ListBundles - scan bundle: %v", ErrScanRow, err)
		}
		bundles = append(bundles, bundle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBundles - iterate rows: %v", ErrScanRow, err)
	}

	return bundles, nil
}

// ListTimeSlots возвращает доступные слоты начала
func (r *Repository) ListTimeSlots(ctx context.Context) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("time_slots").
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var slots []types.TimeString
	for rows.Next() {
		var slot types.TimeString
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: ListTimeSlots - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTimeSlots - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListCategories возвращает список категорий
func (r *Repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("categories").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan category: %v", ErrScanRow, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - iterate rows: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListCities возвращает список городов
func (r *Repository) ListCities(ctx context.Context) ([]domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("cities").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCities - scan city: %v", ErrScanRow, err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCities - iterate rows: %v", ErrScanRow, err)
	}

	return cities, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var activity domain.Activity
	err := row.Scan(
		&activity.ID,
		&activity.Name,
		&activity.Category,
		&activity.City,
		&activity.ProviderID,
		&activity.Currency,
		&activity.Price,
		pq.Array(&activity.Durations),
		&activity.Duration,
		&activity.Distance,
		&activity.Description,
		pq.Array(&activity.WhatsIncluded),
		pq.Array(&activity.WhatToBring),
		pq.Array(&activity.Images),
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
