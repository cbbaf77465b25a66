package report

import (
	"github.com/bitmark-inc/covid-stats-api/schema"
)

// RollupSet is the set of countries whose national entry is summed up from
// all of their rows
type RollupSet map[string]struct{}

// NewRollupSet builds a RollupSet from country names
func NewRollupSet(countries []string) RollupSet {
	s := make(RollupSet, len(countries))
	for _, c := range countries {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether the country is rolled up
func (s RollupSet) Contains(country string) bool {
	_, ok := s[country]
	return ok
}

// ProvincialSummary builds the summary of every named province or state.
// A later row with the same name replaces the earlier one.
func ProvincialSummary(rows []schema.ReportRow) schema.ProvincialSummary {
	summary := make(schema.ProvincialSummary)
	for _, row := range rows {
		name := row.Province()
		if name == "" {
			continue
		}

		summary[name] = schema.ProvinceSummary{
			Country:    row.Country(),
			LastUpdate: row.LastUpdate(),
			Confirmed:  toCount(row[schema.ColumnConfirmed]),
			Deaths:     toCount(row[schema.ColumnDeaths]),
			Recovered:  toCount(row[schema.ColumnRecovered]),
			Latitude:   schema.Coordinate(toCoordinate(row[schema.ColumnLatitude])),
			Longitude:  schema.Coordinate(toCoordinate(row[schema.ColumnLongitude])),
		}
	}
	return summary
}

// NationalSummary builds the summary of every country. Countries in the
// rollup set carry the sums over all of their rows, other countries take
// the last row with their name.
func NationalSummary(rows []schema.ReportRow, rollup RollupSet) schema.NationalSummary {
	summary := make(schema.NationalSummary)
	for _, row := range rows {
		name := row.Country()
		if rollup.Contains(name) {
			summary[name] = schema.CountrySummary{}
			continue
		}

		lat := schema.Coordinate(toCoordinate(row[schema.ColumnLatitude]))
		lng := schema.Coordinate(toCoordinate(row[schema.ColumnLongitude]))
		summary[name] = schema.CountrySummary{
			LastUpdate: row.LastUpdate(),
			Confirmed:  toCount(row[schema.ColumnConfirmed]),
			Deaths:     toCount(row[schema.ColumnDeaths]),
			Recovered:  toCount(row[schema.ColumnRecovered]),
			Latitude:   &lat,
			Longitude:  &lng,
		}
	}

	// every rollup country has its zero entry by now
	for _, row := range rows {
		name := row.Country()
		if !rollup.Contains(name) {
			continue
		}

		entry := summary[name]
		entry.Confirmed += toCount(row[schema.ColumnConfirmed])
		entry.Deaths += toCount(row[schema.ColumnDeaths])
		entry.Recovered += toCount(row[schema.ColumnRecovered])
		summary[name] = entry
	}

	return summary
}

// Aggregate builds both summaries from the same rows
func Aggregate(rows []schema.ReportRow, rollup RollupSet) (schema.NationalSummary, schema.ProvincialSummary) {
	return NationalSummary(rows, rollup), ProvincialSummary(rows)
}
