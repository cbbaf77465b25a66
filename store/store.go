package store

import (
	"errors"

	"github.com/bitmark-inc/covid-stats-api/schema"
)

const storeLogPrefix = "store"

var ErrNoSnapshot = errors.New("no daily report loaded")

// ReportStore - interface for the daily report state
type ReportStore interface {
	Pinger
	Snapshotter
	CaseQuerier
}

// Pinger - check the store is serving data
type Pinger interface {
	Ping() error
}

// Snapshotter - read and replace the whole snapshot
type Snapshotter interface {
	Snapshot() *schema.Snapshot
	Replace(*schema.Snapshot)
}

// CaseQuerier - look up the raw counts of a single region
type CaseQuerier interface {
	ProvincialCases(name string) (schema.CaseCount, error)
	NationalCases(name string) (schema.CaseCount, error)
}
