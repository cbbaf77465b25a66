package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateMarshalNaN(t *testing.T) {
	b, err := json.Marshal(ProvinceSummary{
		Country:   "Canada",
		Latitude:  Coordinate(math.NaN()),
		Longitude: Coordinate(-79.5),
	})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"country":"Canada","last_update":"","confirmed":0,"deaths":0,"recovered":0,"latitude":null,"longitude":-79.5}`, string(b))
}

func TestCoordinateUnmarshalNull(t *testing.T) {
	var p ProvinceSummary
	err := json.Unmarshal([]byte(`{"latitude":null,"longitude":12.5}`), &p)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(float64(p.Latitude)))
	assert.Equal(t, Coordinate(12.5), p.Longitude)
}

func TestCountrySummaryOmitsDetailsOfRollup(t *testing.T) {
	b, err := json.Marshal(CountrySummary{Confirmed: 15, Deaths: 1, Recovered: 3})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"confirmed":15,"deaths":1,"recovered":3}`, string(b))
}

func TestReportRowLastUpdate(t *testing.T) {
	assert.Equal(t, "2020-03-21 12:00:00", ReportRow{"Last Update": "2020-03-21 12:00:00"}.LastUpdate())
	assert.Equal(t, "2020-04-01 21:58:34", ReportRow{"Last_Update": "2020-04-01 21:58:34"}.LastUpdate())
	assert.Equal(t, "", ReportRow{}.LastUpdate())
}

func TestSnapshotLoaded(t *testing.T) {
	var s *Snapshot
	assert.False(t, s.Loaded())
	assert.False(t, EmptySnapshot().Loaded())
	assert.True(t, (&Snapshot{Date: "04-01-2020"}).Loaded())
}
