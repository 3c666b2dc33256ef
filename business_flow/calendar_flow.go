package businessflow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/voyzlab/voyz-marketing/app/dto"
	"github.com/voyzlab/voyz-marketing/models"
	"github.com/voyzlab/voyz-marketing/repository"
	"github.com/voyzlab/voyz-marketing/utils"
	"github.com/xuri/excelize/v2"
)

var (
	aggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opportunity_aggregations_total",
			Help: "Total number of opportunity aggregation passes",
		},
		[]string{"source"},
	)

	invalidRangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "opportunity_invalid_ranges_total",
			Help: "Input records skipped because their end date preceded their start date",
		},
	)

	aggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "opportunity_aggregation_duration_seconds",
			Help:    "Wall time of a single aggregation pass",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// CalendarSnapshot is one cached aggregation result for a merchant/month.
// InputHash fingerprints the inputs that produced it; a changed hash
// invalidates the snapshot.
type CalendarSnapshot struct {
	InputHash  string                      `json:"input_hash"`
	ComputedAt time.Time                   `json:"computed_at"`
	Days       []models.DailyOpportunities `json:"days"`
}

// SnapshotCache stores aggregation snapshots keyed by merchant and month.
// A nil snapshot return with nil error means cache miss.
type SnapshotCache interface {
	Get(ctx context.Context, merchantID uint, monthKey string) (*CalendarSnapshot, error)
	Put(ctx context.Context, merchantID uint, monthKey string, snapshot *CalendarSnapshot) error
	Invalidate(ctx context.Context, merchantID uint, monthKey string) error
}

// CalendarFlow serves the per-day marketing opportunity timeline
type CalendarFlow interface {
	GetMonthlyOpportunities(ctx context.Context, req *dto.MonthlyOpportunitiesRequest) (*dto.MonthlyOpportunitiesResponse, error)
	ExportMonthlyReport(ctx context.Context, req *dto.MonthlyOpportunitiesRequest) (string, []byte, error)
	RefreshMonthlySnapshot(ctx context.Context, merchantID uint, year int, month time.Month) error
}

// CalendarFlowImpl implements the calendar business flow
type CalendarFlowImpl struct {
	merchantRepo   repository.MerchantRepository
	reminderRepo   repository.ReminderRepository
	specialDayRepo repository.SpecialDayRepository
	cache          SnapshotCache
	aggregator     *OpportunityAggregator
}

// NewCalendarFlow creates a new calendar flow instance. cache may be nil, in
// which case every request recomputes.
func NewCalendarFlow(
	merchantRepo repository.MerchantRepository,
	reminderRepo repository.ReminderRepository,
	specialDayRepo repository.SpecialDayRepository,
	cache SnapshotCache,
) CalendarFlow {
	return &CalendarFlowImpl{
		merchantRepo:   merchantRepo,
		reminderRepo:   reminderRepo,
		specialDayRepo: specialDayRepo,
		cache:          cache,
		aggregator:     NewOpportunityAggregator(),
	}
}

// GetMonthlyOpportunities returns the merchant's opportunity timeline for one
// month, served from the snapshot cache when the inputs are unchanged.
func (f *CalendarFlowImpl) GetMonthlyOpportunities(ctx context.Context, req *dto.MonthlyOpportunitiesRequest) (*dto.MonthlyOpportunitiesResponse, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, NewBusinessError("INVALID_MONTH", "Invalid month", ErrInvalidMonth)
	}
	month := time.Month(req.Month)

	input, err := f.loadInput(ctx, req.MerchantID, req.Year, month)
	if err != nil {
		return nil, err
	}

	hash := hashInput(input)
	monthKey := utils.MonthKey(req.Year, month)

	if f.cache != nil {
		cached, err := f.cache.Get(ctx, req.MerchantID, monthKey)
		// Cache failures degrade to recomputation; they never fail the request.
		if err == nil && cached != nil && cached.InputHash == hash {
			return buildMonthlyResponse(monthKey, cached, true), nil
		}
	}

	snapshot := f.compute(input, hash)

	if f.cache != nil {
		_ = f.cache.Put(ctx, req.MerchantID, monthKey, snapshot)
	}

	return buildMonthlyResponse(monthKey, snapshot, false), nil
}

// ExportMonthlyReport renders the month's timeline as an xlsx workbook
func (f *CalendarFlowImpl) ExportMonthlyReport(ctx context.Context, req *dto.MonthlyOpportunitiesRequest) (string, []byte, error) {
	resp, err := f.GetMonthlyOpportunities(ctx, req)
	if err != nil {
		return "", nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := resp.Month
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"date", "id", "title", "category", "priority", "confidence", "target_customer", "suggested_action", "expected_effect", "data_source"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	row := 2
	for _, day := range resp.Days {
		for _, o := range day.Opportunities {
			record := []any{
				day.Date,
				o.ID,
				o.Title,
				o.Category,
				o.Priority,
				o.Confidence,
				o.TargetCustomer,
				o.SuggestedAction,
				o.ExpectedEffect,
				o.DataSource,
			}
			cellRef, _ := excelize.CoordinatesToCellName(1, row)
			_ = xl.SetSheetRow(sheet, cellRef, &record)
			row++
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	filename := fmt.Sprintf("marketing_calendar_%s.xlsx", resp.Month)
	return filename, buf.Bytes(), nil
}

// RefreshMonthlySnapshot recomputes and stores the snapshot unconditionally.
// Used by the background scheduler to keep the cache warm.
func (f *CalendarFlowImpl) RefreshMonthlySnapshot(ctx context.Context, merchantID uint, year int, month time.Month) error {
	input, err := f.loadInput(ctx, merchantID, year, month)
	if err != nil {
		return err
	}

	snapshot := f.compute(input, hashInput(input))

	if f.cache == nil {
		return nil
	}
	return f.cache.Put(ctx, merchantID, utils.MonthKey(year, month), snapshot)
}

func (f *CalendarFlowImpl) loadInput(ctx context.Context, merchantID uint, year int, month time.Month) (AggregationInput, error) {
	merchant, err := f.merchantRepo.ByID(ctx, merchantID)
	if err != nil {
		return AggregationInput{}, NewBusinessError("MERCHANT_LOOKUP_FAILED", "Failed to lookup merchant", err)
	}
	if merchant == nil {
		return AggregationInput{}, NewBusinessError("MERCHANT_NOT_FOUND", "Merchant not found", ErrMerchantNotFound)
	}

	from, to := utils.MonthWindow(year, month)

	reminderRows, err := f.reminderRepo.ListOverlapping(ctx, merchantID, from, to)
	if err != nil {
		return AggregationInput{}, NewBusinessError("REMINDER_FETCH_FAILED", "Failed to fetch reminders", err)
	}

	suggestions, err := f.specialDayRepo.ListDaySuggestions(ctx, merchantID, from, to)
	if err != nil {
		return AggregationInput{}, NewBusinessError("SUGGESTION_FETCH_FAILED", "Failed to fetch day suggestions", err)
	}

	reminders := make([]models.Reminder, 0, len(reminderRows))
	for _, r := range reminderRows {
		reminders = append(reminders, *r)
	}

	return AggregationInput{
		Reminders:     reminders,
		Suggestions:   suggestions,
		StoreCategory: merchant.StoreCategory,
	}, nil
}

func (f *CalendarFlowImpl) compute(input AggregationInput, hash string) *CalendarSnapshot {
	start := time.Now()
	days, stats := f.aggregator.Aggregate(input)
	aggregationDuration.Observe(time.Since(start).Seconds())

	aggregationsTotal.WithLabelValues("reminder").Add(float64(stats.ReminderInstances))
	aggregationsTotal.WithLabelValues("suggestion").Add(float64(stats.SuggestionInstances))
	invalidRangesTotal.Add(float64(stats.InvalidRanges))

	return &CalendarSnapshot{
		InputHash:  hash,
		ComputedAt: utils.UTCNow(),
		Days:       days,
	}
}

// hashInput fingerprints the aggregation inputs. Serialization order is
// deterministic (slices keep repository order, struct fields are fixed), so
// equal inputs always hash equal.
func hashInput(input AggregationInput) string {
	raw, err := json.Marshal(input)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func buildMonthlyResponse(monthKey string, snapshot *CalendarSnapshot, fromCache bool) *dto.MonthlyOpportunitiesResponse {
	days := make([]dto.DailyOpportunitiesDTO, 0, len(snapshot.Days))
	for _, day := range snapshot.Days {
		opportunities := make([]dto.OpportunityDTO, 0, len(day.Opportunities))
		for _, o := range day.Opportunities {
			opportunities = append(opportunities, dto.OpportunityDTO{
				ID:              o.ID,
				Date:            utils.FormatDate(o.Date),
				Title:           o.Title,
				Description:     o.Description,
				TargetCustomer:  o.TargetCustomer,
				SuggestedAction: o.SuggestedAction,
				ExpectedEffect:  o.ExpectedEffect,
				Category:        o.Category.String(),
				Confidence:      o.Confidence,
				Priority:        o.Priority.String(),
				DataSource:      o.DataSource.String(),
			})
		}
		days = append(days, dto.DailyOpportunitiesDTO{
			Date:            utils.FormatDate(day.Date),
			HasHighPriority: day.HasHighPriority(),
			TotalCount:      day.TotalCount(),
			Opportunities:   opportunities,
		})
	}

	return &dto.MonthlyOpportunitiesResponse{
		Month:      monthKey,
		FromCache:  fromCache,
		ComputedAt: snapshot.ComputedAt.Format(time.RFC3339),
		Days:       days,
	}
}
