package catalog_test

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.openly.dev/pointy"

	"droscher.com/BeerBase/pkg/catalog"
	"droscher.com/BeerBase/pkg/model"
)

func (suite *CatalogTestSuite) writeWorkbook(rows ...[]any) string {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)

	for index, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, index+1)
		suite.Require().NoError(err)
		suite.Require().NoError(workbook.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(suite.T().TempDir(), "beers.xlsx")
	suite.Require().NoError(workbook.SaveAs(path))

	return path
}

func (suite *CatalogTestSuite) TestLoadFromFile_ReadsWorkbooks() {
	path := suite.writeWorkbook(
		[]any{"abv", "ibu", "id", "name", "style", "brewery_id", "ounces"},
		[]any{"0.067", "70.0", "999", "Watershed IPA (2013)", "American IPA", "150", "12.0"},
		[]any{"", "", "1000", "Nitro Stout", "Irish Dry Stout", "150", "16.0"},
	)

	result, err := suite.catalog.LoadFromFile(suite.ctx, path)

	suite.Require().NoError(err)
	suite.Equal(2, result.Loaded)

	records, err := suite.catalog.QueryBeers(suite.ctx, model.BeerFilter{BreweryID: pointy.Int64(150)})

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal(0.067, records[0][model.FieldABV])
	suite.Equal(70.0, records[0][model.FieldIBU])
	suite.Nil(records[1][model.FieldABV])
	suite.Nil(records[1][model.FieldIBU])
	suite.Equal(16.0, records[1][model.FieldSize])
}

func (suite *CatalogTestSuite) TestLoadFromFile_WorkbookWithBadRow() {
	path := suite.writeWorkbook(
		[]any{"abv", "ibu", "id", "name", "style", "brewery_id", "ounces"},
		[]any{"0.067", "70.0", "not-a-number", "Watershed IPA (2013)", "American IPA", "150", "12.0"},
	)

	result, err := suite.catalog.LoadFromFile(suite.ctx, path)

	suite.Require().ErrorIs(err, catalog.ErrParse)
	suite.Equal(1, result.Failed)
	suite.Equal(int64(0), suite.count())
}

func (suite *CatalogTestSuite) TestLoadFromFile_MissingWorkbook() {
	_, err := suite.catalog.LoadFromFile(suite.ctx, filepath.Join(suite.T().TempDir(), "nope.xlsx"))

	suite.Require().ErrorIs(err, catalog.ErrIO)
}

func (suite *CatalogTestSuite) TestLoadFromFile_FallsBackToCSV() {
	result, err := suite.catalog.LoadFromFile(suite.ctx, "testdata/beers.csv")

	suite.Require().NoError(err)
	suite.Equal(seedRows, result.Loaded)
}
