package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/BeerBase/pkg/model"
)

const insertBatchSize = 500

var ErrBeerNotFound = errors.New("beer not found")

// EnsureSchema creates the beers table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.DB.WithContext(ctx).AutoMigrate(&model.Beer{})
}

// ResetSchema drops and recreates the beers table, destroying all data.
func (r *Repository) ResetSchema(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	migrator := r.DB.WithContext(ctx).Migrator()

	if err := migrator.DropTable(&model.Beer{}); err != nil {
		r.Logger.Error("error dropping beers table", zap.Error(err))

		return err
	}

	if err := migrator.CreateTable(&model.Beer{}); err != nil {
		r.Logger.Error("error creating beers table", zap.Error(err))

		return err
	}

	return nil
}

// InsertBeers stores all beers in one transaction; either every beer is stored or none is.
func (r *Repository) InsertBeers(ctx context.Context, beers []model.Beer) error {
	if len(beers) == 0 {
		return nil
	}

	return r.inTransaction(ctx, "insert beers", func(tx *gorm.DB) error {
		return tx.CreateInBatches(&beers, insertBatchSize).Error
	})
}

// FindBeers returns the beers matching any condition of the filter, ordered by beer_id.
func (r *Repository) FindBeers(ctx context.Context, filter model.BeerFilter) ([]model.Beer, error) {
	conditions := filter.Conditions()
	if len(conditions) == 0 {
		return []model.Beer{}, nil
	}

	disjunction := make(sq.Or, 0, len(conditions))
	for _, condition := range conditions {
		disjunction = append(disjunction, sq.Eq{condition.Column: condition.Value})
	}

	where, args, err := disjunction.ToSql()
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var beers []model.Beer

	result := r.DB.WithContext(ctx).Where(where, args...).Order("beer_id").Find(&beers)
	if result.Error != nil {
		r.Logger.Error("error finding beers", zap.String("where", where), zap.Error(result.Error))

		return nil, result.Error
	}

	return beers, nil
}

// DeleteBeer removes the beer with the given id. Lookup, delete and commit share one transaction.
func (r *Repository) DeleteBeer(ctx context.Context, beerID int64) error {
	return r.inTransaction(ctx, "delete beer", func(tx *gorm.DB) error {
		var beer model.Beer

		if result := tx.Where("beer_id = ?", beerID).First(&beer); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrBeerNotFound, beerID)
			}

			return result.Error
		}

		result := tx.Where("beer_id = ?", beer.BeerID).Delete(&model.Beer{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected != 1 {
			return fmt.Errorf("%w: id %d", ErrBeerNotFound, beerID)
		}

		return nil
	})
}

func (r *Repository) CountBeers(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Beer{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
