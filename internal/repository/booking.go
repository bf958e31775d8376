package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert writes the record keyed by booking id with replace semantics. The
// notified flag is always forced back to false so an updated booking is
// re-armed for the next matching reminder scan.
func (r *BookingRepository) Upsert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (
				booking_id, main_person, check_in, check_out, accommodations,
				total_number_of_people, booked_by, advanced_payment_received,
				advanced_payment_type, advanced_payment_amount, phone_number,
				notes, notified, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, now())
			  ON CONFLICT (booking_id) DO UPDATE SET
				main_person               = EXCLUDED.main_person,
				check_in                  = EXCLUDED.check_in,
				check_out                 = EXCLUDED.check_out,
				accommodations            = EXCLUDED.accommodations,
				total_number_of_people    = EXCLUDED.total_number_of_people,
				booked_by                 = EXCLUDED.booked_by,
				advanced_payment_received = EXCLUDED.advanced_payment_received,
				advanced_payment_type     = EXCLUDED.advanced_payment_type,
				advanced_payment_amount   = EXCLUDED.advanced_payment_amount,
				phone_number              = EXCLUDED.phone_number,
				notes                     = EXCLUDED.notes,
				notified                  = FALSE,
				updated_at                = now()
			  RETURNING booking_id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.ID, b.MainPerson, b.CheckIn, b.CheckOut, b.Accommodations,
		b.TotalNumberOfPeople, b.BookedBy, b.AdvancedPaymentReceived,
		b.AdvancedPaymentType, b.AdvancedPaymentAmount, b.PhoneNumber, b.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert booking: %w", err)
	}

	var id string
	if err = row.Scan(&id); err != nil {
		return fmt.Errorf("scan upserted booking: %w", err)
	}

	return nil
}

// Delete removes the record. Deleting an id that is already gone is a no-op.
func (r *BookingRepository) Delete(ctx context.Context, bookingID string) error {
	query := `DELETE FROM bookings WHERE booking_id = $1 RETURNING booking_id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	var id string
	if err = row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("scan deleted booking: %w", err)
	}

	return nil
}

// MarkNotified flips the notified flag. The record may have been deleted
// between the scheduler's query and this call; that is not an error.
func (r *BookingRepository) MarkNotified(ctx context.Context, bookingID string) error {
	query := `UPDATE bookings
			  SET notified = TRUE, updated_at = now()
			  WHERE booking_id = $1
			  RETURNING booking_id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}

	var id string
	if err = row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("scan notified booking: %w", err)
	}

	return nil
}

// ListUnnotifiedByCheckIn matches the check-in column byte-for-byte against
// the string the scan constructs.
func (r *BookingRepository) ListUnnotifiedByCheckIn(ctx context.Context, checkIn string) ([]*domain.Booking, error) {
	query := `SELECT booking_id, main_person, check_in, check_out, accommodations,
					 total_number_of_people, booked_by, advanced_payment_received,
					 advanced_payment_type, advanced_payment_amount, phone_number,
					 notes, notified
			  FROM bookings
			  WHERE check_in = $1 AND notified = FALSE`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, checkIn)
	if err != nil {
		return nil, fmt.Errorf("list unnotified bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.MainPerson, &b.CheckIn, &b.CheckOut, &b.Accommodations,
			&b.TotalNumberOfPeople, &b.BookedBy, &b.AdvancedPaymentReceived,
			&b.AdvancedPaymentType, &b.AdvancedPaymentAmount, &b.PhoneNumber,
			&b.Notes, &b.Notified,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
