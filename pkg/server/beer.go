package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BeerBase/pkg/catalog"
	"droscher.com/BeerBase/pkg/model"
)

const (
	msgNoSuchBeer  = "No such beer found."
	msgDeleted     = "Beer successfully deleted."
	msgServerError = "Internal server error."
)

var ErrInvalidInput = errors.New("bad request")

type BeerServer struct {
	catalog catalog.BeerCatalog
	logger  *zap.Logger
}

func NewBeerServer(beerCatalog catalog.BeerCatalog, logger *zap.Logger) *BeerServer {
	return &BeerServer{catalog: beerCatalog, logger: logger}
}

func (b *BeerServer) Register(router *gin.RouterGroup) {
	router.GET("/beer", b.GetBeer)
	router.DELETE("/beer", b.DeleteBeer)
	router.DELETE("/beer/:beer_id", b.DeleteBeer)
}

// GetBeer lists beers matching any of the given query parameters.
// (GET /beer)
func (b *BeerServer) GetBeer(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		badRequest(c, err)

		return
	}

	records, err := b.catalog.QueryBeers(c.Request.Context(), filter)
	if err != nil {
		b.logger.Error("failed beer query", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})

		return
	}

	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNoSuchBeer})

		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteBeer removes one beer, identified by path or by the beer_id query parameter.
// (DELETE /beer/{beer_id}, DELETE /beer?beer_id=)
func (b *BeerServer) DeleteBeer(c *gin.Context) {
	var target deleteTarget

	if err := c.ShouldBindUri(&target); err != nil {
		badRequest(c, err)

		return
	}

	if target.BeerID == nil {
		if err := c.ShouldBindQuery(&target); err != nil {
			badRequest(c, err)

			return
		}
	}

	if target.BeerID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: beer_id is required", ErrInvalidInput)})

		return
	}

	beerID := *target.BeerID
	err := b.catalog.DeleteBeer(c.Request.Context(), beerID)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgNoSuchBeer})
	default:
		b.logger.Error("failed beer delete", zap.Int64("beer_id", beerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgServerError})
	}
}

// beerQuery holds the GET /beer parameters; absent parameters stay nil.
type beerQuery struct {
	ABV       *float64 `form:"abv"`
	IBU       *float64 `form:"ibu"`
	BeerID    *int64   `form:"beer_id"`
	Name      *string  `form:"name"`
	Style     *string  `form:"style"`
	BreweryID *int64   `form:"brewery_id"`
	Size      *float64 `form:"size"`
}

type deleteTarget struct {
	BeerID *int64 `form:"beer_id" uri:"beer_id"`
}

func filterFromQuery(c *gin.Context) (model.BeerFilter, error) {
	var query beerQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		return model.BeerFilter{}, err
	}

	floats := []struct {
		name  string
		value *float64
	}{
		{model.FieldABV, query.ABV},
		{model.FieldIBU, query.IBU},
		{model.FieldSize, query.Size},
	}

	for _, param := range floats {
		if param.value != nil && (math.IsNaN(*param.value) || math.IsInf(*param.value, 0)) {
			return model.BeerFilter{}, fmt.Errorf("%s must be a finite number", param.name)
		}
	}

	return model.BeerFilter{
		ABV:       query.ABV,
		IBU:       query.IBU,
		BeerID:    query.BeerID,
		Name:      query.Name,
		Style:     query.Style,
		BreweryID: query.BreweryID,
		Size:      query.Size,
	}, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %v", ErrInvalidInput, err)})
}
