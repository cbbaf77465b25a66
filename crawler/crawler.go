package crawler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/covid-stats-api/external/csse"
	"github.com/bitmark-inc/covid-stats-api/external/ontario"
	"github.com/bitmark-inc/covid-stats-api/report"
	"github.com/bitmark-inc/covid-stats-api/schema"
	"github.com/bitmark-inc/covid-stats-api/store"
	"github.com/bitmark-inc/covid-stats-api/utils"
)

const (
	logPrefix        = "crawler"
	defaultMinLength = 50
)

var (
	ErrEmptyDataset      = errors.New("daily report is empty")
	ErrRefreshInProgress = errors.New("refresh in progress")
)

// State is the stage a refresh is in
type State string

const (
	StateIdle        State = "idle"
	StateFetching    State = "fetching"
	StateParsing     State = "parsing"
	StateOverriding  State = "overriding"
	StateAggregating State = "aggregating"
	StateReady       State = "ready"
	StateFailed      State = "failed"
)

// Cron - a job run by the scheduler
type Cron interface {
	Run(ctx context.Context) error
}

// Status - report the state of the last refresh
type Status interface {
	State() State
}

// Config of a Crawler
type Config struct {
	// body length at or under which a daily report is treated as missing
	MinLength int

	// Region is the province whose figures come from the official source
	Region string

	RollupCountries []string

	// Location is the timezone the report dates are resolved in
	Location *time.Location
}

// Crawler builds a new snapshot from the daily report and the official
// figures, and publishes it to the store
type Crawler struct {
	dataset  csse.Dataset
	official ontario.Official
	store    store.ReportStore
	scope    tally.Scope

	minLength int
	region    string
	rollup    report.RollupSet
	location  *time.Location
	now       func() time.Time

	busy int32

	stateLock sync.RWMutex
	state     State
}

// New - new crawler. official may be nil to skip the override.
func New(conf Config, dataset csse.Dataset, official ontario.Official, reportStore store.ReportStore, scope tally.Scope) *Crawler {
	if conf.MinLength <= 0 {
		conf.MinLength = defaultMinLength
	}
	if conf.Location == nil {
		conf.Location = time.Local
	}
	if scope == nil {
		scope = tally.NoopScope
	}

	return &Crawler{
		dataset:   dataset,
		official:  official,
		store:     reportStore,
		scope:     scope,
		minLength: conf.MinLength,
		region:    conf.Region,
		rollup:    report.NewRollupSet(conf.RollupCountries),
		location:  conf.Location,
		now:       time.Now,
		state:     StateIdle,
	}
}

// State returns the current stage of the crawler
func (c *Crawler) State() State {
	c.stateLock.RLock()
	defer c.stateLock.RUnlock()
	return c.state
}

func (c *Crawler) setState(s State) {
	c.stateLock.Lock()
	c.state = s
	c.stateLock.Unlock()
	log.WithFields(log.Fields{"prefix": logPrefix, "state": s}).Debug("refresh state")
}

// Run refreshes the store. Only one refresh runs at a time, a call made
// while another is running returns ErrRefreshInProgress.
func (c *Crawler) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&c.busy, 0, 1) {
		return ErrRefreshInProgress
	}
	defer atomic.StoreInt32(&c.busy, 0)

	start := time.Now()
	snapshot, err := c.refresh(ctx)
	if err != nil {
		c.setState(StateFailed)
		c.scope.Counter("refresh_failure").Inc(1)
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("refresh daily report")
		sentry.CaptureException(err)
		return err
	}

	c.store.Replace(snapshot)
	c.setState(StateReady)

	c.scope.Counter("refresh_success").Inc(1)
	c.scope.Gauge("dataset_rows").Update(float64(len(snapshot.Rows)))
	c.scope.Timer("refresh_latency").Record(time.Since(start))

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"date":     snapshot.Date,
		"fallback": snapshot.Fallback,
		"rows":     len(snapshot.Rows),
	}).Info("daily report refreshed")
	return nil
}

// refresh builds a complete snapshot without touching the store
func (c *Crawler) refresh(ctx context.Context) (*schema.Snapshot, error) {
	c.setState(StateFetching)
	today, yesterday := utils.ReportDates(c.now().In(c.location))
	body, date, err := c.fetch(ctx, today, yesterday)
	if err != nil {
		return nil, err
	}

	c.setState(StateParsing)
	rows, err := report.ParseCSV(body)
	if err != nil {
		return nil, err
	}

	c.setState(StateOverriding)
	c.override(ctx, rows)

	c.setState(StateAggregating)
	national, provincial := report.Aggregate(rows, c.rollup)

	return &schema.Snapshot{
		Date:       date,
		Fallback:   date != today,
		LoadedAt:   c.now(),
		Rows:       rows,
		National:   national,
		Provincial: provincial,
	}, nil
}

// override applies the official figures of the region. Any failure here
// keeps the report values.
func (c *Crawler) override(ctx context.Context, rows []schema.ReportRow) {
	if c.official == nil {
		return
	}

	count, err := c.official.Get(ctx)
	if err != nil {
		c.scope.Counter("override_skipped").Inc(1)
		log.WithFields(log.Fields{"prefix": logPrefix, "region": c.region, "error": err}).Warn("get official data")
		return
	}

	if err := report.ApplyOverride(rows, c.region, count); err != nil {
		c.scope.Counter("override_skipped").Inc(1)
		log.WithFields(log.Fields{"prefix": logPrefix, "region": c.region, "error": err}).Warn("apply official data")
	}
}
