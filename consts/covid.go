package consts

import "strings"

const (
	CSSEDailyReportURL = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_daily_reports"
	OntarioOfficialURL = "https://api.ontario.ca/api/drupal/page%2F2019-novel-coronavirus?fields=body"
	OntarioRegion      = "Ontario"
)

// RollupCountries are reported per subregion by csse. Their national figures
// are the sum of every row of the country.
var RollupCountries = []string{
	"Canada",
	"US",
	"China",
	"Australia",
	"Denmark",
	"France",
	"Netherlands",
	"United Kingdom",
}

// CleanCountryNames trims the given names and drops the empty ones. It falls
// back to RollupCountries when nothing is left.
func CleanCountryNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		cleaned = append(cleaned, n)
	}

	if len(cleaned) == 0 {
		return RollupCountries
	}
	return cleaned
}
