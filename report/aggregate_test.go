package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-stats-api/consts"
	"github.com/bitmark-inc/covid-stats-api/schema"
)

func canadaRows() []schema.ReportRow {
	return []schema.ReportRow{
		{"Country_Region": "Canada", "Province_State": "Ontario", "Confirmed": "10", "Deaths": "1", "Recovered": "2"},
		{"Country_Region": "Canada", "Province_State": "Quebec", "Confirmed": "5", "Deaths": "0", "Recovered": "1"},
	}
}

func TestNationalSummaryRollup(t *testing.T) {
	national := NationalSummary(canadaRows(), NewRollupSet([]string{"Canada"}))

	assert.Equal(t, schema.CountrySummary{Confirmed: 15, Deaths: 1, Recovered: 3}, national["Canada"])
	assert.Len(t, national, 1)
}

func TestProvincialSummaryScenario(t *testing.T) {
	provincial := ProvincialSummary(canadaRows())

	ontario, ok := provincial["Ontario"]
	assert.True(t, ok)
	assert.Equal(t, "Canada", ontario.Country)
	assert.Equal(t, float64(10), ontario.Confirmed)
	assert.Equal(t, float64(1), ontario.Deaths)
	assert.Equal(t, float64(2), ontario.Recovered)
	assert.True(t, math.IsNaN(float64(ontario.Latitude)), "missing latitude should be NaN")
	assert.True(t, math.IsNaN(float64(ontario.Longitude)), "missing longitude should be NaN")
	assert.Len(t, provincial, 2)
}

func TestNationalSummaryLastRowWins(t *testing.T) {
	rows := []schema.ReportRow{
		{"Country_Region": "Germany", "Confirmed": "7", "Deaths": "1", "Recovered": "0", "Last Update": "2020-03-21 10:00:00", "Lat": "51.1", "Long_": "10.4"},
		{"Country_Region": "Germany", "Confirmed": "3", "Deaths": "x", "Recovered": "", "Last Update": "2020-03-21 11:00:00", "Lat": "n/a", "Long_": "10.5"},
	}

	national := NationalSummary(rows, NewRollupSet(nil))
	germany := national["Germany"]

	assert.Equal(t, float64(3), germany.Confirmed, "not a sum")
	assert.Equal(t, float64(0), germany.Deaths, "non-numeric should be zero")
	assert.Equal(t, float64(0), germany.Recovered, "empty should be zero")
	assert.Equal(t, "2020-03-21 11:00:00", germany.LastUpdate)
	if assert.NotNil(t, germany.Latitude) && assert.NotNil(t, germany.Longitude) {
		assert.True(t, math.IsNaN(float64(*germany.Latitude)))
		assert.Equal(t, schema.Coordinate(10.5), *germany.Longitude)
	}
}

func TestNationalSummaryRollupIncludesEveryRow(t *testing.T) {
	rows, err := ParseCSV(loadFixture(t))
	assert.NoError(t, err)

	national := NationalSummary(rows, NewRollupSet(consts.RollupCountries))

	// the country level "Recovered" row of Canada is part of the sum
	assert.Equal(t, schema.CountrySummary{Confirmed: 7003, Deaths: 70, Recovered: 1324}, national["Canada"])
	assert.Equal(t, schema.CountrySummary{Confirmed: 51, Deaths: 1, Recovered: 0}, national["US"])
	assert.Equal(t, schema.CountrySummary{Confirmed: 67802, Deaths: 3193, Recovered: 63326}, national["China"])

	italy := national["Italy"]
	assert.Equal(t, float64(110574), italy.Confirmed)
	assert.Equal(t, "2020-04-01 21:58:34", italy.LastUpdate)
	assert.Len(t, national, 5)
}

func TestProvincialSummaryFixture(t *testing.T) {
	rows, err := ParseCSV(loadFixture(t))
	assert.NoError(t, err)

	provincial := ProvincialSummary(rows)

	// Germany and Italy have no province
	assert.Len(t, provincial, 6)
	assert.NotContains(t, provincial, "")

	quebec := provincial["Quebec"]
	assert.Equal(t, schema.ProvinceSummary{
		Country:    "Canada",
		LastUpdate: "2020-04-01 21:58:34",
		Confirmed:  4611,
		Deaths:     33,
		Recovered:  0,
		Latitude:   52.9399,
		Longitude:  -73.5491,
	}, quebec)
}

func TestProvincialSummaryLastRowWins(t *testing.T) {
	rows := []schema.ReportRow{
		{"Country_Region": "US", "Province_State": "Washington", "Confirmed": "1"},
		{"Country_Region": "US", "Province_State": "Washington", "Confirmed": "2"},
	}

	provincial := ProvincialSummary(rows)
	assert.Equal(t, float64(2), provincial["Washington"].Confirmed)
}

func TestAggregateEmptyRows(t *testing.T) {
	national, provincial := Aggregate(nil, NewRollupSet(consts.RollupCountries))
	assert.NotNil(t, national)
	assert.NotNil(t, provincial)
	assert.Len(t, national, 0)
	assert.Len(t, provincial, 0)
}
