package crawler

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-stats-api/external/csse"
)

// fetch returns the report of today, or the report of yesterday when today
// is not published yet. The date of the returned report is returned with it.
func (c *Crawler) fetch(ctx context.Context, today, yesterday string) ([]byte, string, error) {
	body, err := c.dataset.Daily(ctx, today)
	if err == nil && len(body) > c.minLength {
		log.WithFields(log.Fields{"prefix": logPrefix, "date": today}).Info("retrieved today's report")
		return body, today, nil
	}

	if err != nil && !errors.Is(err, csse.ErrDatasetNotFound) {
		return nil, "", err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "date": today, "length": len(body)}).Info("today's report not ready, use yesterday's")
	c.scope.Counter("refresh_fallback").Inc(1)

	body, err = c.dataset.Daily(ctx, yesterday)
	if errors.Is(err, csse.ErrDatasetNotFound) {
		return nil, "", fmt.Errorf("%w: %s and %s not found", ErrEmptyDataset, today, yesterday)
	}
	if err != nil {
		return nil, "", err
	}
	if len(body) <= c.minLength {
		return nil, "", fmt.Errorf("%w: %s has %d bytes", ErrEmptyDataset, yesterday, len(body))
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "date": yesterday}).Info("retrieved yesterday's report")
	return body, yesterday, nil
}
