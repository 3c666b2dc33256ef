package scheduler

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/voyzlab/voyz-marketing/app/services"
	businessflow "github.com/voyzlab/voyz-marketing/business_flow"
	"github.com/voyzlab/voyz-marketing/repository"
	"github.com/voyzlab/voyz-marketing/utils"
	"gopkg.in/natefinch/lumberjack.v2"
)

// OpportunityScheduler periodically pulls the special-day feed and keeps the
// calendar snapshots of active merchants warm.
type OpportunityScheduler struct {
	feedClient     services.SpecialDayClient
	specialDayRepo repository.SpecialDayRepository
	merchantRepo   repository.MerchantRepository
	calendarFlow   businessflow.CalendarFlow
	logger         *log.Logger
	interval       time.Duration
}

func NewOpportunityScheduler(
	feedClient services.SpecialDayClient,
	specialDayRepo repository.SpecialDayRepository,
	merchantRepo repository.MerchantRepository,
	calendarFlow businessflow.CalendarFlow,
	interval time.Duration,
) *OpportunityScheduler {
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	s := &OpportunityScheduler{
		feedClient:     feedClient,
		specialDayRepo: specialDayRepo,
		merchantRepo:   merchantRepo,
		calendarFlow:   calendarFlow,
		interval:       interval,
	}
	s.logger = newSchedulerLogger()

	return s
}

// newSchedulerLogger writes to stdout and a size-rotated file under data/
func newSchedulerLogger() *log.Logger {
	rotated := &lumberjack.Logger{
		Filename:   filepath.Join("data", "scheduler.log"),
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	mw := io.MultiWriter(os.Stdout, rotated)
	return log.New(mw, "scheduler ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
}

// Start launches the scheduler loop in a background goroutine and returns a stop function
func (s *OpportunityScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *OpportunityScheduler) runOnce(ctx context.Context) {
	now := utils.UTCNow()

	// Current and next month, so the calendar stays populated past month end
	months := []time.Time{
		time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0),
	}

	for _, m := range months {
		if err := s.collectMonth(ctx, m.Year(), m.Month()); err != nil {
			s.logger.Printf("scheduler: feed collection failed for %s: %v", utils.MonthKey(m.Year(), m.Month()), err)
		}
	}

	s.warmSnapshots(ctx, months)
}

// collectMonth pulls one month from the feed and upserts new records
func (s *OpportunityScheduler) collectMonth(ctx context.Context, year int, month time.Month) error {
	days, err := s.feedClient.FetchMonth(ctx, year, month)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}

	inserted, err := s.specialDayRepo.UpsertByNameAndDate(ctx, days)
	if err != nil {
		return err
	}
	if inserted > 0 {
		s.logger.Printf("scheduler: stored %d new special days for %s", inserted, utils.MonthKey(year, month))
	}
	return nil
}

// warmSnapshots recomputes calendar snapshots for every active merchant
func (s *OpportunityScheduler) warmSnapshots(ctx context.Context, months []time.Time) {
	const pageSize = utils.DefaultPageSize

	for offset := 0; ; offset += pageSize {
		merchants, err := s.merchantRepo.ListActive(ctx, pageSize, offset)
		if err != nil {
			s.logger.Printf("scheduler: list active merchants failed: %v", err)
			return
		}
		if len(merchants) == 0 {
			return
		}

		for _, merchant := range merchants {
			for _, m := range months {
				if err := s.calendarFlow.RefreshMonthlySnapshot(ctx, merchant.ID, m.Year(), m.Month()); err != nil {
					s.logger.Printf("scheduler: snapshot refresh failed for merchant id=%d month=%s: %v",
						merchant.ID, utils.MonthKey(m.Year(), m.Month()), err)
				}
			}
		}

		if len(merchants) < pageSize {
			return
		}
	}
}
