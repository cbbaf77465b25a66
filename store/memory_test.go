package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/covid-stats-api/report"
	"github.com/bitmark-inc/covid-stats-api/schema"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store ReportStore
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.store = NewMemoryStore()
}

func (s *MemoryStoreTestSuite) snapshot(date string, confirmed string) *schema.Snapshot {
	rows := []schema.ReportRow{
		{"Country_Region": "Canada", "Province_State": "Ontario", "Confirmed": confirmed, "Deaths": "1", "Recovered": "2"},
	}
	national, provincial := report.Aggregate(rows, report.NewRollupSet([]string{"Canada"}))
	return &schema.Snapshot{
		Date:       date,
		Rows:       rows,
		National:   national,
		Provincial: provincial,
	}
}

func (s *MemoryStoreTestSuite) TestEmptyStore() {
	s.Equal(ErrNoSnapshot, s.store.Ping())

	snapshot := s.store.Snapshot()
	s.NotNil(snapshot.Rows)
	s.Len(snapshot.Rows, 0)
	s.Len(snapshot.National, 0)
	s.Len(snapshot.Provincial, 0)

	_, err := s.store.ProvincialCases("ontario")
	s.Equal(report.ErrRegionNotFound, err)
}

func (s *MemoryStoreTestSuite) TestReplace() {
	s.store.Replace(s.snapshot("04-01-2020", "10"))
	s.NoError(s.store.Ping())

	count, err := s.store.ProvincialCases("ONTARIO")
	s.NoError(err)
	s.Equal(schema.CaseCount{ConfirmedCases: "10", Deaths: "1", Recoveries: "2"}, count)

	count, err = s.store.NationalCases("canada")
	s.NoError(err)
	s.Equal("10", count.ConfirmedCases)

	s.store.Replace(nil)
	s.Equal("04-01-2020", s.store.Snapshot().Date, "nil snapshot should be ignored")
}

func (s *MemoryStoreTestSuite) TestReplaceIsAtomic() {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				s.store.Replace(s.snapshot("04-01-2020", "10"))
			} else {
				s.store.Replace(s.snapshot("04-02-2020", "20"))
			}
		}
	}()

	torn := 0
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			snapshot := s.store.Snapshot()
			if len(snapshot.Rows) == 0 {
				continue
			}
			if snapshot.Rows[0]["Confirmed"] == "10" && snapshot.National["Canada"].Confirmed != 10 {
				torn++
			}
			if snapshot.Rows[0]["Confirmed"] == "20" && snapshot.National["Canada"].Confirmed != 20 {
				torn++
			}
		}
	}()

	wg.Wait()
	s.Equal(0, torn, "rows and summaries from different reports")
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}
