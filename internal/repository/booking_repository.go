package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lendhub/service-lending/internal/domain/apperr"
	bookingDomain "github.com/lendhub/service-lending/internal/domain/booking"
)

// overlapCondition is the inclusive-boundary interval intersection test used
// for conflict detection: existing start inside the window, existing end
// inside it, or the existing window containing it.
const overlapCondition = "(start_time BETWEEN ? AND ?) OR (end_time BETWEEN ? AND ?) OR (start_time <= ? AND end_time >= ?)"

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// ExistsOverlapping reports whether any booking for the item intersects
// [start, end], regardless of status.
func (r *GormBookingRepository) ExistsOverlapping(ctx context.Context, itemID uuid.UUID, start, end time.Time) (bool, error) {
	return r.existsOverlapping(r.db.WithContext(ctx), itemID, start, end)
}

func (r *GormBookingRepository) existsOverlapping(tx *gorm.DB, itemID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64
	err := tx.Model(&BookingModel{}).
		Where("item_id = ?", itemID).
		Where(overlapCondition, start, end, start, end, start, end).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}
	return count > 0, nil
}

// Save persists a new booking. The overlap check runs again inside the insert
// transaction while the item row is locked, so two concurrent saves for the
// same item serialize and the loser observes the winner's row.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item ItemModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", bk.ItemID()).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("Item", bk.ItemID().String())
			}
			return fmt.Errorf("failed to lock item row: %w", err)
		}

		occupied, err := r.existsOverlapping(tx, bk.ItemID(), bk.Start(), bk.End())
		if err != nil {
			return err
		}
		if occupied {
			return apperr.NewBookingConflict(apperr.CauseOverlap, "item is already booked for this window")
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}
		return nil
	})
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)

	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NewConflict("booking was modified by another transaction")
	}
	return nil
}

// FindByBooker retrieves the booker's bookings in the given state bucket.
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID uuid.UUID, filter bookingDomain.StateFilter, now time.Time, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{}).Where("booker_id = ?", bookerID)
	return r.findClassified(q, filter, now, page, limit)
}

// FindByOwner retrieves bookings on items owned by the user, in the given
// state bucket. An owner with no items simply yields an empty page.
func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter bookingDomain.StateFilter, now time.Time, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.findClassified(q, filter, now, page, limit)
}

func (r *GormBookingRepository) findClassified(q *gorm.DB, filter bookingDomain.StateFilter, now time.Time, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	switch filter {
	case bookingDomain.FilterAll:
		// no extra predicate
	case bookingDomain.FilterCurrent:
		q = q.Where("start_time <= ? AND end_time >= ?", now, now)
	case bookingDomain.FilterFuture:
		q = q.Where("start_time > ?", now)
	case bookingDomain.FilterPast:
		q = q.Where("end_time < ?", now)
	case bookingDomain.FilterWaiting:
		q = q.Where("bookings.status = ?", string(bookingDomain.StatusWaiting))
	case bookingDomain.FilterRejected:
		q = q.Where("bookings.status = ?", string(bookingDomain.StatusRejected))
	default:
		return nil, 0, apperr.NewNotFound("BookingState", string(filter))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	if err := q.Order("start_time DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = bk
	}
	return bookings, total, nil
}

// ExistsFinishedApproved reports whether the booker has an approved booking
// of the item whose window already ended.
func (r *GormBookingRepository) ExistsFinishedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("item_id = ? AND booker_id = ? AND status = ? AND end_time < ?",
			itemID, bookerID, string(bookingDomain.StatusApproved), now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check finished bookings: %w", err)
	}
	return count > 0, nil
}

// ListAll retrieves all bookings with pagination (admin).
func (r *GormBookingRepository) ListAll(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&BookingModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	if err := q.Order("created_at DESC").
		Offset(page * limit).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = bk
	}
	return bookings, total, nil
}

// CountByStatus returns booking counts grouped by status (admin).
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// --- Conversion helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		ItemID:    bk.ItemID(),
		BookerID:  bk.BookerID(),
		StartTime: bk.Start(),
		EndTime:   bk.End(),
		Status:    string(bk.Status()),
		Version:   bk.Version(),
		CreatedAt: bk.CreatedAt(),
		UpdatedAt: bk.UpdatedAt(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.ItemID,
		m.BookerID,
		m.StartTime,
		m.EndTime,
		status,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
