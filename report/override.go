package report

import (
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-stats-api/schema"
)

// ApplyOverride replaces the counts of the first row whose province equals
// region with the official figures. Figures missing from count are left as
// they are.
func ApplyOverride(rows []schema.ReportRow, region string, count schema.OfficialCount) error {
	for _, row := range rows {
		if row.Province() != region {
			continue
		}

		overrideField(row, region, schema.ColumnConfirmed, count.Confirmed)
		overrideField(row, region, schema.ColumnRecovered, count.Resolved)
		overrideField(row, region, schema.ColumnDeaths, count.Deceased)

		log.WithFields(log.Fields{"prefix": logPrefix, "region": region}).Info("applied official data")
		return nil
	}

	return ErrOverrideTargetMissing
}

func overrideField(row schema.ReportRow, region, column, value string) {
	if value == "" {
		log.WithFields(log.Fields{"prefix": logPrefix, "region": region, "column": column}).Warn("official value missing, keep report value")
		return
	}
	row[column] = value
}
