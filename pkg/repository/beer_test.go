package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"

	"droscher.com/BeerBase/pkg/model"
	"droscher.com/BeerBase/pkg/repository"
)

type BeerTestSuite struct {
	RepositorySuite
}

func TestBeerTestSuite(t *testing.T) {
	suite.Run(t, new(BeerTestSuite))
}

var beerColumns = []string{"beer_id", "name", "style", "brewery_id", "size", "abv", "ibu"}

func (suite *BeerTestSuite) TestInsertBeers_InsertsInOneTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "beers" ("beer_id","name","style","brewery_id","size","abv","ibu") VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14)`)).
		WithArgs(999, "Watershed IPA (2013)", "American IPA", 150, 12.0, 0.067, 70.0,
			1000, "Nordic Lager", "Lager", 151, 16.0, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 2))
	suite.mock.ExpectCommit()

	beers := []model.Beer{
		{BeerID: 999, Name: "Watershed IPA (2013)", Style: "American IPA", BreweryID: 150, Size: 12.0, ABV: pointy.Float64(0.067), IBU: pointy.Float64(70.0)},
		{BeerID: 1000, Name: "Nordic Lager", Style: "Lager", BreweryID: 151, Size: 16.0},
	}

	err := suite.repository.InsertBeers(context.Background(), beers)
	suite.Require().NoError(err)
}

func (suite *BeerTestSuite) TestInsertBeers_RollsBackOnError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "beers" (.+)`).WillReturnError(errors.New("duplicate key value violates unique constraint"))
	suite.mock.ExpectRollback()

	err := suite.repository.InsertBeers(context.Background(), []model.Beer{{BeerID: 1, Name: "A", Style: "B", BreweryID: 1, Size: 12}})
	suite.Require().ErrorContains(err, "duplicate key")
	suite.Equal(0, suite.observedLogs.FilterMessage("commit failed").Len())
}

func (suite *BeerTestSuite) TestInsertBeers_NoBeersIsNoop() {
	err := suite.repository.InsertBeers(context.Background(), nil)
	suite.Require().NoError(err)
}

func (suite *BeerTestSuite) TestFindBeers_OrsTheSetFields() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "beers" WHERE (style = $1 OR brewery_id = $2) ORDER BY beer_id`)).
		WithArgs("American IPA", 150).
		WillReturnRows(sqlmock.NewRows(beerColumns).
			AddRow(999, "Watershed IPA (2013)", "American IPA", 150, 12.0, 0.067, 70.0).
			AddRow(1204, "Big Sky Lager", "Lager", 150, 16.0, nil, nil))

	beers, err := suite.repository.FindBeers(context.Background(), model.BeerFilter{
		Style:     pointy.String("American IPA"),
		BreweryID: pointy.Int64(150),
	})

	suite.Require().NoError(err)
	suite.Len(beers, 2)
	suite.Equal(int64(999), beers[0].BeerID)
	suite.Require().NotNil(beers[0].ABV)
	suite.InDelta(0.067, *beers[0].ABV, 0.0001)
	suite.Equal("Big Sky Lager", beers[1].Name)
	suite.Nil(beers[1].ABV)
	suite.Nil(beers[1].IBU)
}

func (suite *BeerTestSuite) TestFindBeers_EmptyFilterSkipsTheDatabase() {
	beers, err := suite.repository.FindBeers(context.Background(), model.BeerFilter{})

	suite.Require().NoError(err)
	suite.Empty(beers)
}

func (suite *BeerTestSuite) TestFindBeers_ReturnsError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errors.New("connection reset"))

	beers, err := suite.repository.FindBeers(context.Background(), model.BeerFilter{BeerID: pointy.Int64(1)})

	suite.Nil(beers)
	suite.EqualError(err, "connection reset")
	suite.Equal(1, suite.observedLogs.FilterMessage("error finding beers").Len())
}

func (suite *BeerTestSuite) TestDeleteBeer_DeletesBeer() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "beers" WHERE beer_id = $1 ORDER BY "beers"."beer_id" LIMIT $2`)).
		WithArgs(999, 1).
		WillReturnRows(sqlmock.NewRows(beerColumns).AddRow(999, "Watershed IPA (2013)", "American IPA", 150, 12.0, 0.067, 70.0))
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "beers" WHERE beer_id = $1`)).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.repository.DeleteBeer(context.Background(), 999)
	suite.Require().NoError(err)
}

func (suite *BeerTestSuite) TestDeleteBeer_NotFound() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers"`).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows(beerColumns))
	suite.mock.ExpectRollback()

	err := suite.repository.DeleteBeer(context.Background(), 42)
	suite.Require().ErrorIs(err, repository.ErrBeerNotFound)
	suite.ErrorContains(err, "id 42")
}

func (suite *BeerTestSuite) TestDeleteBeer_CommitFailureIsReported() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "beers"`).
		WillReturnRows(sqlmock.NewRows(beerColumns).AddRow(999, "Watershed IPA (2013)", "American IPA", 150, 12.0, 0.067, 70.0))
	suite.mock.ExpectExec(`^DELETE FROM "beers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit().WillReturnError(errors.New("disk I/O error"))

	err := suite.repository.DeleteBeer(context.Background(), 999)
	suite.Require().EqualError(err, "disk I/O error")

	commitLogs := suite.observedLogs.FilterMessage("commit failed")
	suite.Require().Equal(1, commitLogs.Len())
	suite.Equal("delete beer", commitLogs.All()[0].ContextMap()["operation"])
}

func (suite *BeerTestSuite) TestCountBeers_CountsBeers() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "beers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2410))

	count, err := suite.repository.CountBeers(context.Background())
	suite.Require().NoError(err)
	suite.Equal(int64(2410), count)
}
