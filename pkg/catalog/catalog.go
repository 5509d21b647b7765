package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BeerBase/pkg/model"
	"droscher.com/BeerBase/pkg/repository"
)

// BeerCatalog is the part of the catalog the API layer depends on.
type BeerCatalog interface {
	QueryBeers(ctx context.Context, filter model.BeerFilter) ([]model.Record, error)
	DeleteBeer(ctx context.Context, beerID int64) error
}

type beerStore interface {
	InsertBeers(ctx context.Context, beers []model.Beer) error
	FindBeers(ctx context.Context, filter model.BeerFilter) ([]model.Beer, error)
	DeleteBeer(ctx context.Context, beerID int64) error
	CountBeers(ctx context.Context) (int64, error)
	ResetSchema(ctx context.Context) error
}

// LoadResult reports the outcome of a seed load. When any row fails nothing is loaded.
type LoadResult struct {
	Rows       int
	Loaded     int
	Failed     int
	FirstError error
	Errors     error
}

type Catalog struct {
	store  beerStore
	logger *zap.Logger
}

func NewCatalog(store beerStore, logger *zap.Logger) *Catalog {
	return &Catalog{store: store, logger: logger}
}

// LoadFromFile loads a seed file, reading .xlsx workbooks from their first sheet and anything else as CSV.
func (c *Catalog) LoadFromFile(ctx context.Context, path string) (*LoadResult, error) {
	if isSpreadsheet(path) {
		source, err := openSheetSource(path)
		if err != nil {
			c.logger.Error("error opening seed workbook", zap.String("file", path), zap.Error(err))

			return &LoadResult{FirstError: err, Errors: err}, err
		}

		return c.load(ctx, path, source)
	}

	return c.LoadFromCSV(ctx, path)
}

func (c *Catalog) LoadFromCSV(ctx context.Context, path string) (*LoadResult, error) {
	file, err := openCSV(path)
	if err != nil {
		c.logger.Error("error opening seed file", zap.String("file", path), zap.Error(err))

		return &LoadResult{FirstError: err, Errors: err}, err
	}
	defer file.Close()

	return c.load(ctx, path, newCSVSource(file))
}

func (c *Catalog) load(ctx context.Context, path string, source rowSource) (*LoadResult, error) {
	beers, failed, err := parseRows(source)
	if err != nil {
		c.logger.Error("error reading seed file", zap.String("file", path), zap.Error(err))

		return &LoadResult{FirstError: err, Errors: err}, err
	}

	result := &LoadResult{Rows: len(beers) + len(failed), Failed: len(failed)}

	if len(failed) > 0 {
		result.FirstError = failed[0]
		result.Errors = combineRowErrors(failed)

		c.logger.Error("seed file has malformed rows, nothing loaded",
			zap.String("file", path), zap.Int("failed", len(failed)), zap.Error(result.FirstError))

		return result, fmt.Errorf("%w: %d of %d rows in %s: %w", ErrParse, len(failed), result.Rows, path, result.FirstError)
	}

	if err = c.store.InsertBeers(ctx, beers); err != nil {
		err = fmt.Errorf("%w: loading %s: %w", ErrInternal, path, err)
		result.Failed = len(beers)
		result.FirstError = err
		result.Errors = err

		c.logger.Error("error storing seed rows", zap.String("file", path), zap.Error(err))

		return result, err
	}

	result.Loaded = len(beers)

	c.logger.Info("seed file loaded", zap.String("file", path), zap.Int("beers", result.Loaded))

	return result, nil
}

// QueryBeers returns every beer matching at least one set field of the filter. An empty filter
// matches nothing.
func (c *Catalog) QueryBeers(ctx context.Context, filter model.BeerFilter) ([]model.Record, error) {
	if filter.IsEmpty() {
		return []model.Record{}, nil
	}

	beers, err := c.store.FindBeers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	records := make([]model.Record, 0, len(beers))
	for _, beer := range beers {
		records = append(records, beer.ToRecord())
	}

	return records, nil
}

func (c *Catalog) DeleteBeer(ctx context.Context, beerID int64) error {
	err := c.store.DeleteBeer(ctx, beerID)
	if err == nil {
		c.logger.Info("beer deleted", zap.Int64("beer_id", beerID))

		return nil
	}

	if errors.Is(err, repository.ErrBeerNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotFound, beerID)
	}

	c.logger.Error("error deleting beer", zap.Int64("beer_id", beerID), zap.Error(err))

	return fmt.Errorf("%w: deleting beer %d: %w", ErrInternal, beerID, err)
}

// Reinitialize drops all beers, recreates the schema and loads the seed file again.
func (c *Catalog) Reinitialize(ctx context.Context, path string) (*LoadResult, error) {
	if err := c.store.ResetSchema(ctx); err != nil {
		err = fmt.Errorf("%w: resetting schema: %w", ErrInternal, err)

		return &LoadResult{FirstError: err, Errors: err}, err
	}

	return c.LoadFromFile(ctx, path)
}

func (c *Catalog) Count(ctx context.Context) (int64, error) {
	count, err := c.store.CountBeers(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrQuery, err)
	}

	return count, nil
}
