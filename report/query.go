package report

import (
	"strings"

	"github.com/bitmark-inc/covid-stats-api/schema"
)

// ProvincialCases returns the raw counts of the first row whose province
// matches name regardless of case
func ProvincialCases(rows []schema.ReportRow, name string) (schema.CaseCount, error) {
	return findCases(rows, schema.ColumnProvince, name)
}

// NationalCases returns the raw counts of the first row whose country
// matches name regardless of case
func NationalCases(rows []schema.ReportRow, name string) (schema.CaseCount, error) {
	return findCases(rows, schema.ColumnCountry, name)
}

func findCases(rows []schema.ReportRow, column, name string) (schema.CaseCount, error) {
	name = strings.ToLower(name)
	for _, row := range rows {
		if strings.ToLower(row[column]) != name {
			continue
		}
		return schema.CaseCount{
			ConfirmedCases: row[schema.ColumnConfirmed],
			Deaths:         row[schema.ColumnDeaths],
			Recoveries:     row[schema.ColumnRecovered],
		}, nil
	}
	return schema.CaseCount{}, ErrRegionNotFound
}
