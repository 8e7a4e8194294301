package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lendhub/service-lending/internal/domain/apperr"
	bookingDomain "github.com/lendhub/service-lending/internal/domain/booking"
	itemDomain "github.com/lendhub/service-lending/internal/domain/item"
	"github.com/lendhub/service-lending/internal/domain/pagination"
	userDomain "github.com/lendhub/service-lending/internal/domain/user"
	"github.com/lendhub/service-lending/internal/events"
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ItemID    uuid.UUID `json:"item_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// BookingService is the application service orchestrating booking use cases:
// the state machine, conflict detection, and the classified query engine.
type BookingService struct {
	bookings  bookingDomain.Repository
	items     itemDomain.Repository
	users     userDomain.Repository
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		items:     items,
		users:     users,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Classification queries evaluate
// current/past/future against this clock.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// CreateBooking reserves a time window on an item for the booker. The window
// must be free under the inclusive-boundary overlap rule and the booker must
// not own the item.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*BookingView, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if !it.Available() {
		return nil, apperr.NewUnavailable("Item", it.ID().String())
	}

	occupied, err := s.bookings.ExistsOverlapping(ctx, it.ID(), req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, apperr.NewBookingConflict(apperr.CauseOverlap, "item is already booked for this window")
	}

	if it.IsOwnedBy(bookerID) {
		return nil, apperr.NewBookingConflict(apperr.CauseSelfBooking, "owners cannot book their own items")
	}

	bk, err := bookingDomain.NewBooking(it.ID(), bookerID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("item_id", it.ID().String()),
		zap.String("booker_id", bookerID.String()),
	)
	s.publishBookingEvent(ctx, events.BookingRequested, bk, it)

	view := toBookingView(bk, it, booker)
	return &view, nil
}

// DecideBooking applies the item owner's decision on a waiting booking.
// Only the owner may decide, and an approved booking cannot be re-decided.
func (s *BookingService) DecideBooking(ctx context.Context, actorID, bookingID uuid.UUID, approve bool) (*BookingView, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}

	if !it.IsOwnedBy(actorID) {
		return nil, apperr.NewForbidden("only the item owner may decide a booking")
	}

	if err := bk.Decide(approve); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	eventType := events.BookingRejected
	if approve {
		eventType = events.BookingApproved
	}
	s.publishBookingEvent(ctx, eventType, bk, it)

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}
	view := toBookingView(bk, it, booker)
	return &view, nil
}

// GetBooking retrieves a single booking, visible only to the booker or the
// item owner. Anyone else gets not-found so existence does not leak.
func (s *BookingService) GetBooking(ctx context.Context, actorID, bookingID uuid.UUID) (*BookingView, error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}

	if !bk.IsVisibleTo(actorID, it.OwnerID()) {
		return nil, apperr.NewNotFound("Booking", bookingID.String())
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}
	view := toBookingView(bk, it, booker)
	return &view, nil
}

// ListByBooker retrieves the caller's own bookings in the given state bucket.
// from is a zero-based item offset, size the page length.
func (s *BookingService) ListByBooker(ctx context.Context, actorID uuid.UUID, state string, from, size int) (*pagination.PaginatedResult[BookingView], error) {
	return s.list(ctx, actorID, state, from, size, s.bookings.FindByBooker)
}

// ListByOwner retrieves bookings on the caller's items in the given state
// bucket. An owner with no items gets an empty page.
func (s *BookingService) ListByOwner(ctx context.Context, actorID uuid.UUID, state string, from, size int) (*pagination.PaginatedResult[BookingView], error) {
	return s.list(ctx, actorID, state, from, size, s.bookings.FindByOwner)
}

type classifiedQuery func(ctx context.Context, userID uuid.UUID, filter bookingDomain.StateFilter, now time.Time, page, limit int) ([]*bookingDomain.Booking, int64, error)

func (s *BookingService) list(ctx context.Context, actorID uuid.UUID, state string, from, size int, query classifiedQuery) (*pagination.PaginatedResult[BookingView], error) {
	if err := s.requireUser(ctx, actorID); err != nil {
		return nil, err
	}

	filter, err := bookingDomain.ParseStateFilter(state)
	if err != nil {
		return nil, err
	}

	page := pagination.PageFromOffset(from, size)
	bookings, total, err := query(ctx, actorID, filter, s.now(), page, size)
	if err != nil {
		return nil, err
	}

	views, err := s.toBookingViews(ctx, bookings)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPaginatedResult(views, total, page, size)
	return &result, nil
}

// --- Admin ---

// BookingStats holds booking statistics for the admin surface.
type BookingStats struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// ListAllBookings returns a paginated list of all bookings (admin).
func (s *BookingService) ListAllBookings(ctx context.Context, page, limit int) ([]BookingView, int64, error) {
	bookings, total, err := s.bookings.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	views, err := s.toBookingViews(ctx, bookings)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// GetBookingStats returns aggregate booking counts (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStats, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return &BookingStats{TotalBookings: total, ByStatus: counts}, nil
}

// --- Helpers ---

func (s *BookingService) requireUser(ctx context.Context, id uuid.UUID) error {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NewNotFound("User", id.String())
	}
	return nil
}

// toBookingViews enriches bookings with item and booker summaries in two
// batched lookups.
func (s *BookingService) toBookingViews(ctx context.Context, bookings []*bookingDomain.Booking) ([]BookingView, error) {
	itemIDs := make([]uuid.UUID, 0, len(bookings))
	bookerIDs := make([]uuid.UUID, 0, len(bookings))
	seenItems := make(map[uuid.UUID]struct{})
	seenUsers := make(map[uuid.UUID]struct{})
	for _, bk := range bookings {
		if _, ok := seenItems[bk.ItemID()]; !ok {
			seenItems[bk.ItemID()] = struct{}{}
			itemIDs = append(itemIDs, bk.ItemID())
		}
		if _, ok := seenUsers[bk.BookerID()]; !ok {
			seenUsers[bk.BookerID()] = struct{}{}
			bookerIDs = append(bookerIDs, bk.BookerID())
		}
	}

	items, err := s.items.FindByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.FindByIDs(ctx, bookerIDs)
	if err != nil {
		return nil, err
	}

	itemsByID := make(map[uuid.UUID]*itemDomain.Item, len(items))
	for _, it := range items {
		itemsByID[it.ID()] = it
	}
	usersByID := make(map[uuid.UUID]*userDomain.User, len(users))
	for _, u := range users {
		usersByID[u.ID()] = u
	}

	views := make([]BookingView, len(bookings))
	for i, bk := range bookings {
		views[i] = toBookingView(bk, itemsByID[bk.ItemID()], usersByID[bk.BookerID()])
	}
	return views, nil
}

func (s *BookingService) publishBookingEvent(ctx context.Context, eventType string, bk *bookingDomain.Booking, it *itemDomain.Item) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishBookingEvent(ctx, eventType, events.BookingEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		ItemName:   it.Name(),
		OwnerID:    it.OwnerID(),
		BookerID:   bk.BookerID(),
		StartTime:  bk.Start(),
		EndTime:    bk.End(),
		OccurredAt: time.Now().UTC(),
	})
}
