package schema

import (
	"encoding/json"
	"math"
	"time"
)

// column names of the csse daily report
const (
	ColumnCountry       = "Country_Region"
	ColumnProvince      = "Province_State"
	ColumnConfirmed     = "Confirmed"
	ColumnDeaths        = "Deaths"
	ColumnRecovered     = "Recovered"
	ColumnLastUpdate    = "Last Update"
	ColumnLastUpdateAlt = "Last_Update"
	ColumnLatitude      = "Lat"
	ColumnLongitude     = "Long_"
)

// ReportRow is one line of a daily report keyed by column header. Values are
// kept as they appear in the csv.
type ReportRow map[string]string

// Country returns the Country_Region value of the row
func (r ReportRow) Country() string {
	return r[ColumnCountry]
}

// Province returns the Province_State value of the row
func (r ReportRow) Province() string {
	return r[ColumnProvince]
}

// LastUpdate returns the update time of the row. Older reports name the
// column with an underscore.
func (r ReportRow) LastUpdate() string {
	if v, ok := r[ColumnLastUpdate]; ok {
		return v
	}
	return r[ColumnLastUpdateAlt]
}

// Coordinate is a latitude or longitude. A value which could not be parsed is
// NaN and is encoded as null.
type Coordinate float64

func (c Coordinate) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Coordinate(math.NaN())
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Coordinate(f)
	return nil
}

// CountrySummary is the national entry of a country. Countries which are
// rolled up from their subregions only carry the three counts.
type CountrySummary struct {
	LastUpdate string      `json:"last_update,omitempty"`
	Confirmed  float64     `json:"confirmed"`
	Deaths     float64     `json:"deaths"`
	Recovered  float64     `json:"recovered"`
	Latitude   *Coordinate `json:"latitude,omitempty"`
	Longitude  *Coordinate `json:"longitude,omitempty"`
}

// ProvinceSummary is the entry of a province or state
type ProvinceSummary struct {
	Country    string     `json:"country"`
	LastUpdate string     `json:"last_update"`
	Confirmed  float64    `json:"confirmed"`
	Deaths     float64    `json:"deaths"`
	Recovered  float64    `json:"recovered"`
	Latitude   Coordinate `json:"latitude"`
	Longitude  Coordinate `json:"longitude"`
}

// NationalSummary maps country name to its summary
type NationalSummary map[string]CountrySummary

// ProvincialSummary maps province or state name to its summary
type ProvincialSummary map[string]ProvinceSummary

// CaseCount is the raw counts of a single region
type CaseCount struct {
	ConfirmedCases string `json:"confirmed_cases"`
	Deaths         string `json:"deaths"`
	Recoveries     string `json:"recoveries"`
}

// Snapshot is the complete state derived from one daily report. Rows and
// both summaries always come from the same report.
type Snapshot struct {
	Date       string            `json:"date"`
	Fallback   bool              `json:"fallback"`
	LoadedAt   time.Time         `json:"loaded_at"`
	Rows       []ReportRow       `json:"-"`
	National   NationalSummary   `json:"-"`
	Provincial ProvincialSummary `json:"-"`
}

// EmptySnapshot returns a snapshot with no data but non-nil collections
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Rows:       []ReportRow{},
		National:   NationalSummary{},
		Provincial: ProvincialSummary{},
	}
}

// Loaded reports whether the snapshot was built from a fetched report
func (s *Snapshot) Loaded() bool {
	return s != nil && s.Date != ""
}

// OfficialCount is the figures a regional government publishes. A field left
// empty was not found in the source.
type OfficialCount struct {
	Confirmed string `json:"confirmed"`
	Resolved  string `json:"resolved"`
	Deceased  string `json:"deceased"`
}

// Empty reports whether none of the figures was found
func (c OfficialCount) Empty() bool {
	return c.Confirmed == "" && c.Resolved == "" && c.Deceased == ""
}
