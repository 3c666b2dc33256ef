package businessflow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/voyzlab/voyz-marketing/models"
)

// In-memory repository fakes shared by the flow tests.

type fakeMerchantRepo struct {
	merchants map[uint]*models.Merchant
	byIDErr   error
}

func newFakeMerchantRepo(merchants ...*models.Merchant) *fakeMerchantRepo {
	repo := &fakeMerchantRepo{merchants: make(map[uint]*models.Merchant)}
	for _, m := range merchants {
		repo.merchants[m.ID] = m
	}
	return repo
}

func (r *fakeMerchantRepo) ByID(ctx context.Context, id uint) (*models.Merchant, error) {
	if r.byIDErr != nil {
		return nil, r.byIDErr
	}
	return r.merchants[id], nil
}

func (r *fakeMerchantRepo) ByEmail(ctx context.Context, email string) (*models.Merchant, error) {
	for _, m := range r.merchants {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMerchantRepo) ListActive(ctx context.Context, limit, offset int) ([]*models.Merchant, error) {
	var active []*models.Merchant
	for _, m := range r.merchants {
		if m.IsActive != nil && *m.IsActive {
			active = append(active, m)
		}
	}
	if offset >= len(active) {
		return nil, nil
	}
	active = active[offset:]
	if limit > 0 && len(active) > limit {
		active = active[:limit]
	}
	return active, nil
}

func (r *fakeMerchantRepo) ByFilter(ctx context.Context, filter models.MerchantFilter, orderBy string, limit, offset int) ([]*models.Merchant, error) {
	return nil, nil
}

func (r *fakeMerchantRepo) Save(ctx context.Context, entity *models.Merchant) error {
	r.merchants[entity.ID] = entity
	return nil
}

func (r *fakeMerchantRepo) SaveBatch(ctx context.Context, entities []*models.Merchant) error {
	return nil
}

func (r *fakeMerchantRepo) Count(ctx context.Context, filter models.MerchantFilter) (int64, error) {
	return int64(len(r.merchants)), nil
}

type fakeReminderRepo struct {
	reminders map[uint]*models.Reminder
	nextID    uint
	saveErr   error
	listErr   error
}

func newFakeReminderRepo(reminders ...*models.Reminder) *fakeReminderRepo {
	repo := &fakeReminderRepo{reminders: make(map[uint]*models.Reminder), nextID: 1}
	for _, r := range reminders {
		repo.reminders[r.ID] = r
		if r.ID >= repo.nextID {
			repo.nextID = r.ID + 1
		}
	}
	return repo
}

func (r *fakeReminderRepo) ByID(ctx context.Context, id uint) (*models.Reminder, error) {
	return r.reminders[id], nil
}

func (r *fakeReminderRepo) ListOverlapping(ctx context.Context, merchantID uint, from, to time.Time) ([]*models.Reminder, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var matched []*models.Reminder
	for _, reminder := range r.reminders {
		if reminder.MerchantID != merchantID {
			continue
		}
		if reminder.StartDate.Before(to) && !reminder.EndDate.Before(from) {
			matched = append(matched, reminder)
		}
	}
	// Map iteration order is random; callers expect repository order.
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *fakeReminderRepo) Save(ctx context.Context, entity *models.Reminder) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if entity.ID == 0 {
		entity.ID = r.nextID
		r.nextID++
	}
	if entity.CreatedAt.IsZero() {
		entity.CreatedAt = time.Now().UTC()
	}
	r.reminders[entity.ID] = entity
	return nil
}

func (r *fakeReminderRepo) Delete(ctx context.Context, id uint) error {
	delete(r.reminders, id)
	return nil
}

func (r *fakeReminderRepo) ByFilter(ctx context.Context, filter models.ReminderFilter, orderBy string, limit, offset int) ([]*models.Reminder, error) {
	return nil, nil
}

func (r *fakeReminderRepo) SaveBatch(ctx context.Context, entities []*models.Reminder) error {
	return nil
}

func (r *fakeReminderRepo) Count(ctx context.Context, filter models.ReminderFilter) (int64, error) {
	return int64(len(r.reminders)), nil
}

type fakeSpecialDayRepo struct {
	suggestions []models.DaySuggestion
	listErr     error
}

func (r *fakeSpecialDayRepo) ByID(ctx context.Context, id uint) (*models.SpecialDay, error) {
	return nil, nil
}

func (r *fakeSpecialDayRepo) ListDaySuggestions(ctx context.Context, merchantID uint, from, to time.Time) ([]models.DaySuggestion, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var matched []models.DaySuggestion
	for _, s := range r.suggestions {
		if s.SpecialDay.StartDate.Before(to) && !s.SpecialDay.EndDate.Before(from) {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

func (r *fakeSpecialDayRepo) UpsertByNameAndDate(ctx context.Context, days []*models.SpecialDay) (int, error) {
	return len(days), nil
}

func (r *fakeSpecialDayRepo) ByFilter(ctx context.Context, filter models.SpecialDayFilter, orderBy string, limit, offset int) ([]*models.SpecialDay, error) {
	return nil, nil
}

func (r *fakeSpecialDayRepo) Save(ctx context.Context, entity *models.SpecialDay) error {
	return nil
}

func (r *fakeSpecialDayRepo) SaveBatch(ctx context.Context, entities []*models.SpecialDay) error {
	return nil
}

func (r *fakeSpecialDayRepo) Count(ctx context.Context, filter models.SpecialDayFilter) (int64, error) {
	return 0, nil
}

// memorySnapshotCache records calls so tests can assert cache traffic.
type memorySnapshotCache struct {
	snapshots   map[string]*CalendarSnapshot
	getErr      error
	putErr      error
	gets        int
	puts        int
	invalidated []string
}

func newMemorySnapshotCache() *memorySnapshotCache {
	return &memorySnapshotCache{snapshots: make(map[string]*CalendarSnapshot)}
}

func (c *memorySnapshotCache) key(merchantID uint, monthKey string) string {
	return fmt.Sprintf("%d:%s", merchantID, monthKey)
}

func (c *memorySnapshotCache) Get(ctx context.Context, merchantID uint, monthKey string) (*CalendarSnapshot, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.snapshots[c.key(merchantID, monthKey)], nil
}

func (c *memorySnapshotCache) Put(ctx context.Context, merchantID uint, monthKey string, snapshot *CalendarSnapshot) error {
	c.puts++
	if c.putErr != nil {
		return c.putErr
	}
	c.snapshots[c.key(merchantID, monthKey)] = snapshot
	return nil
}

func (c *memorySnapshotCache) Invalidate(ctx context.Context, merchantID uint, monthKey string) error {
	delete(c.snapshots, c.key(merchantID, monthKey))
	c.invalidated = append(c.invalidated, c.key(merchantID, monthKey))
	return nil
}
