package crawler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingCron struct {
	runs int32
}

func (c *countingCron) Run(context.Context) error {
	atomic.AddInt32(&c.runs, 1)
	return nil
}

func TestSchedulerRunsAtStart(t *testing.T) {
	cron := &countingCron{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewScheduler(cron, time.Hour).Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, int32(1), atomic.LoadInt32(&cron.runs), "should run once at start")
}

func TestSchedulerRunsOnInterval(t *testing.T) {
	cron := &countingCron{}
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	NewScheduler(cron, 20*time.Millisecond).Start(ctx)
	time.Sleep(10 * time.Millisecond)

	assert.True(t, atomic.LoadInt32(&cron.runs) >= 3, "should run on every tick")
}
