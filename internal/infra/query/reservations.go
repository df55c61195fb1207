package query

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

type ReservationRow struct {
	ID         int64
	Code       string
	GuestID    int64
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int32
	Status     string
}

type CreateReservationParams struct {
	Code       string
	GuestID    int64
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int32
	Status     string
}

type UpdateReservationParams struct {
	ID         int64
	Code       string
	GuestID    int64
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int32
	Status     string
}

const createReservation = `
INSERT INTO reservations (code, guest_id, room_id, check_in, check_out, guest_count, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createReservation,
		arg.Code, arg.GuestID, arg.RoomID, arg.CheckIn, arg.CheckOut, arg.GuestCount, arg.Status).Scan(&id)
	return id, err
}

const getReservationByID = `
SELECT id, code, guest_id, room_id, check_in, check_out, guest_count, status
FROM reservations
WHERE id = $1
`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id int64) (ReservationRow, error) {
	var row ReservationRow
	err := db.QueryRow(ctx, getReservationByID, id).Scan(
		&row.ID, &row.Code, &row.GuestID, &row.RoomID,
		&row.CheckIn, &row.CheckOut, &row.GuestCount, &row.Status)
	return row, err
}

const getReservationByCode = `
SELECT id, code, guest_id, room_id, check_in, check_out, guest_count, status
FROM reservations
WHERE code = $1
`

func (q *Queries) GetReservationByCode(ctx context.Context, db DBTX, code string) (ReservationRow, error) {
	var row ReservationRow
	err := db.QueryRow(ctx, getReservationByCode, code).Scan(
		&row.ID, &row.Code, &row.GuestID, &row.RoomID,
		&row.CheckIn, &row.CheckOut, &row.GuestCount, &row.Status)
	return row, err
}

const listReservations = `
SELECT id, code, guest_id, room_id, check_in, check_out, guest_count, status
FROM reservations
ORDER BY id
`

func (q *Queries) ListReservations(ctx context.Context, db DBTX) ([]ReservationRow, error) {
	rows, err := db.Query(ctx, listReservations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ReservationRow
	for rows.Next() {
		var row ReservationRow
		if err := rows.Scan(&row.ID, &row.Code, &row.GuestID, &row.RoomID,
			&row.CheckIn, &row.CheckOut, &row.GuestCount, &row.Status); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const updateReservation = `
UPDATE reservations
SET code = $2, guest_id = $3, room_id = $4, check_in = $5, check_out = $6,
    guest_count = $7, status = $8, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) error {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID, arg.Code, arg.GuestID, arg.RoomID, arg.CheckIn, arg.CheckOut, arg.GuestCount, arg.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const deleteReservation = `
DELETE FROM reservations
WHERE id = $1
`

func (q *Queries) DeleteReservation(ctx context.Context, db DBTX, id int64) error {
	tag, err := db.Exec(ctx, deleteReservation, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// view rows join guest and room for the read side

type ReservationViewRow struct {
	ID            int64
	Code          string
	Status        string
	CheckIn       time.Time
	CheckOut      time.Time
	GuestCount    int32
	GuestID       int64
	GuestDocument string
	GuestFirst    string
	GuestLast     string
	RoomID        int64
	RoomNumber    int32
	RoomCategory  string
	RoomRateCents int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const reservationViewColumns = `
SELECT r.id, r.code, r.status, r.check_in, r.check_out, r.guest_count,
       g.id, g.document, g.first_name, g.last_name,
       rm.id, rm.number, rm.category, rm.rate_cents,
       r.created_at, r.updated_at
FROM reservations r
JOIN guests g ON g.id = r.guest_id
JOIN rooms rm ON rm.id = r.room_id
`

func scanReservationView(row pgx.Row) (ReservationViewRow, error) {
	var v ReservationViewRow
	err := row.Scan(
		&v.ID, &v.Code, &v.Status, &v.CheckIn, &v.CheckOut, &v.GuestCount,
		&v.GuestID, &v.GuestDocument, &v.GuestFirst, &v.GuestLast,
		&v.RoomID, &v.RoomNumber, &v.RoomCategory, &v.RoomRateCents,
		&v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (q *Queries) GetReservationView(ctx context.Context, db DBTX, id int64) (ReservationViewRow, error) {
	return scanReservationView(db.QueryRow(ctx, reservationViewColumns+"WHERE r.id = $1", id))
}

func (q *Queries) ListReservationViews(ctx context.Context, db DBTX) ([]ReservationViewRow, error) {
	return q.queryReservationViews(ctx, db, reservationViewColumns+"ORDER BY r.id")
}

func (q *Queries) ListReservationViewsByStatus(ctx context.Context, db DBTX, status string) ([]ReservationViewRow, error) {
	return q.queryReservationViews(ctx, db, reservationViewColumns+"WHERE r.status = $1 ORDER BY r.id", status)
}

func (q *Queries) queryReservationViews(ctx context.Context, db DBTX, sql string, args ...any) ([]ReservationViewRow, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ReservationViewRow
	for rows.Next() {
		v, err := scanReservationView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}
