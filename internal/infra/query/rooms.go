package query

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type RoomRow struct {
	ID        int64
	Number    int32
	Category  string
	RateCents int64
	Status    string
}

type CreateRoomParams struct {
	Number    int32
	Category  string
	RateCents int64
	Status    string
}

type UpdateRoomParams struct {
	ID        int64
	Number    int32
	Category  string
	RateCents int64
	Status    string
}

const createRoom = `
INSERT INTO rooms (number, category, rate_cents, status)
VALUES ($1, $2, $3, $4)
RETURNING id
`

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg CreateRoomParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createRoom, arg.Number, arg.Category, arg.RateCents, arg.Status).Scan(&id)
	return id, err
}

const getRoomByID = `
SELECT id, number, category, rate_cents, status
FROM rooms
WHERE id = $1
`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id int64) (RoomRow, error) {
	var row RoomRow
	err := db.QueryRow(ctx, getRoomByID, id).
		Scan(&row.ID, &row.Number, &row.Category, &row.RateCents, &row.Status)
	return row, err
}

const getRoomByNumber = `
SELECT id, number, category, rate_cents, status
FROM rooms
WHERE number = $1
`

func (q *Queries) GetRoomByNumber(ctx context.Context, db DBTX, number int32) (RoomRow, error) {
	var row RoomRow
	err := db.QueryRow(ctx, getRoomByNumber, number).
		Scan(&row.ID, &row.Number, &row.Category, &row.RateCents, &row.Status)
	return row, err
}

const listRooms = `
SELECT id, number, category, rate_cents, status
FROM rooms
ORDER BY number
`

func (q *Queries) ListRooms(ctx context.Context, db DBTX) ([]RoomRow, error) {
	rows, err := db.Query(ctx, listRooms)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RoomRow
	for rows.Next() {
		var row RoomRow
		if err := rows.Scan(&row.ID, &row.Number, &row.Category, &row.RateCents, &row.Status); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const updateRoom = `
UPDATE rooms
SET number = $2, category = $3, rate_cents = $4, status = $5, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateRoom(ctx context.Context, db DBTX, arg UpdateRoomParams) error {
	tag, err := db.Exec(ctx, updateRoom, arg.ID, arg.Number, arg.Category, arg.RateCents, arg.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const deleteRoom = `
DELETE FROM rooms
WHERE id = $1
`

func (q *Queries) DeleteRoom(ctx context.Context, db DBTX, id int64) error {
	tag, err := db.Exec(ctx, deleteRoom, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type RoomStatusCountRow struct {
	Status string
	Count  int64
}

const countRoomsByStatus = `
SELECT status, count(*)
FROM rooms
GROUP BY status
`

func (q *Queries) CountRoomsByStatus(ctx context.Context, db DBTX) ([]RoomStatusCountRow, error) {
	rows, err := db.Query(ctx, countRoomsByStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []RoomStatusCountRow
	for rows.Next() {
		var row RoomStatusCountRow
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
