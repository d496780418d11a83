package booking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	bookingRepo "classalloc/database/repository/booking"
	directoryRepo "classalloc/database/repository/directory"
	"classalloc/models"

	"go.uber.org/zap"
)

// journal records mutations across fakes so ordering can be asserted.
type journal struct {
	mu     sync.Mutex
	events []string
}

func (j *journal) add(e string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
}

func (j *journal) all() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.events...)
}

type memStore struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	names    map[string]string // users collection: id -> name
	journal  *journal

	findErr     error
	deleteErrs  map[string]error
	insertHook  func(call int, docs []models.Booking) (int, error)
	insertCalls int
	chunkSizes  []int
}

func newMemStore(j *journal) *memStore {
	return &memStore{
		bookings:   map[string]models.Booking{},
		names:      map[string]string{},
		deleteErrs: map[string]error{},
		journal:    j,
	}
}

func (s *memStore) seed(bs ...models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range bs {
		s.bookings[b.ID] = b
	}
}

func (s *memStore) withOwner(b models.Booking) models.Booking {
	b.Owner = models.ResolveOwner(b.BookedBy, s.names[b.BookedBy], b.BookedByName)
	return b
}

func (s *memStore) Create(_ context.Context, b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
	s.journal.add("create:" + b.ID)
	return nil
}

func (s *memStore) InsertManyUnordered(_ context.Context, docs []models.Booking) (int, error) {
	s.mu.Lock()
	s.insertCalls++
	call := s.insertCalls
	s.chunkSizes = append(s.chunkSizes, len(docs))
	hook := s.insertHook
	s.mu.Unlock()

	if hook != nil {
		n, err := hook(call, docs)
		s.mu.Lock()
		for _, d := range docs[:n] {
			s.bookings[d.ID] = d
		}
		s.mu.Unlock()
		return n, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range docs {
		s.bookings[d.ID] = d
	}
	s.journal.add("insert")
	return len(docs), nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b = s.withOwner(b)
	return &b, nil
}

func (s *memStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.deleteErrs[id]; err != nil {
		return err
	}
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	s.journal.add("delete:" + id)
	return nil
}

func (s *memStore) matching(pred func(models.Booking) bool) []models.Booking {
	var out []models.Booking
	for _, b := range s.bookings {
		if pred(b) {
			out = append(out, s.withOwner(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) FindOverlapping(_ context.Context, roomID, date, start, end string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.matching(func(b models.Booking) bool {
		return b.Room == roomID && b.Date == date && Overlaps(b.StartTime, b.EndTime, start, end)
	}), nil
}

func (s *memStore) FindOverlappingOnFloor(_ context.Context, floorID, date, start, end string) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matching(func(b models.Booking) bool {
		return b.Floor == floorID && b.Date == date && Overlaps(b.StartTime, b.EndTime, start, end)
	}), nil
}

func (s *memStore) List(_ context.Context, f models.BookingFilter) ([]models.Booking, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.matching(func(b models.Booking) bool {
		return (f.Date == "" || b.Date == f.Date) && (f.Room == "" || b.Room == f.Room)
	})
	total := int64(len(all))
	from := (f.Page - 1) * f.Limit
	if from > len(all) {
		from = len(all)
	}
	to := min(from+f.Limit, len(all))
	return all[from:to], total, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) forRoomDate(room, date string) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matching(func(b models.Booking) bool { return b.Room == room && b.Date == date })
}

type memDirectory struct {
	floors map[string][]models.Room
	err    error
}

func (d *memDirectory) GetFloor(_ context.Context, id string) (*models.Floor, error) {
	if _, ok := d.floors[id]; !ok {
		return nil, directoryRepo.ErrFloorNotFound
	}
	return &models.Floor{ID: id}, nil
}

func (d *memDirectory) ListRoomsOnFloor(_ context.Context, floorID string) ([]models.Room, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.floors[floorID], nil
}

type memAudit struct {
	mu      sync.Mutex
	records []models.AuditRecord
	journal *journal
}

func (a *memAudit) Record(_ context.Context, rec models.AuditRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = append(a.records, rec)
	id := ""
	if rec.BookingSnapshot != nil {
		id = rec.BookingSnapshot.ID
	}
	a.journal.add("audit:" + string(rec.Action) + ":" + id)
}

func (a *memAudit) byAction(action models.AuditAction) []models.AuditRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []models.AuditRecord
	for _, r := range a.records {
		if r.Action == action {
			out = append(out, r)
		}
	}
	return out
}

type memNotifier struct {
	mu    sync.Mutex
	dates []string
}

func (n *memNotifier) BookingsChanged(_ context.Context, date string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dates = append(n.dates, date)
}

var errStore = errors.New("store unavailable")

// tuesday is 2025-04-01, a Tuesday.
var tuesday = time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

type harness struct {
	svc      *DefaultBookingService
	store    *memStore
	dir      *memDirectory
	audit    *memAudit
	notifier *memNotifier
	journal  *journal
}

func newHarness() *harness {
	j := &journal{}
	h := &harness{
		store:    newMemStore(j),
		dir:      &memDirectory{floors: map[string][]models.Room{}},
		audit:    &memAudit{journal: j},
		notifier: &memNotifier{},
		journal:  j,
	}
	h.svc = &DefaultBookingService{
		Store:     h.store,
		Directory: h.dir,
		Audit:     h.audit,
		Notifier:  h.notifier,
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return tuesday },
	}
	return h
}

var admin = models.Actor{ID: "admin-1", Name: "Registrar", Role: models.RoleAdmin}

func bulkRequest() models.BulkRequest {
	return models.BulkRequest{
		Building:    "B1",
		Floor:       "F2",
		Room:        "R201",
		DayOfWeek:   time.Monday,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Department:  models.DepartmentAIML,
		Subject:     "ML",
		Teacher:     "Dr. X",
		HorizonDays: 14,
		Admin:       admin,
	}
}
