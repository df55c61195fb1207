package query

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type GuestRow struct {
	ID        int64
	Document  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type CreateGuestParams struct {
	Document  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type UpdateGuestParams struct {
	ID        int64
	Document  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

const createGuest = `
INSERT INTO guests (document, first_name, last_name, email, phone)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (q *Queries) CreateGuest(ctx context.Context, db DBTX, arg CreateGuestParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createGuest, arg.Document, arg.FirstName, arg.LastName, arg.Email, arg.Phone).Scan(&id)
	return id, err
}

const getGuestByID = `
SELECT id, document, first_name, last_name, email, phone
FROM guests
WHERE id = $1
`

func (q *Queries) GetGuestByID(ctx context.Context, db DBTX, id int64) (GuestRow, error) {
	var row GuestRow
	err := db.QueryRow(ctx, getGuestByID, id).
		Scan(&row.ID, &row.Document, &row.FirstName, &row.LastName, &row.Email, &row.Phone)
	return row, err
}

const getGuestByDocument = `
SELECT id, document, first_name, last_name, email, phone
FROM guests
WHERE document = $1
`

func (q *Queries) GetGuestByDocument(ctx context.Context, db DBTX, document string) (GuestRow, error) {
	var row GuestRow
	err := db.QueryRow(ctx, getGuestByDocument, document).
		Scan(&row.ID, &row.Document, &row.FirstName, &row.LastName, &row.Email, &row.Phone)
	return row, err
}

const listGuests = `
SELECT id, document, first_name, last_name, email, phone
FROM guests
ORDER BY last_name, first_name
`

func (q *Queries) ListGuests(ctx context.Context, db DBTX) ([]GuestRow, error) {
	rows, err := db.Query(ctx, listGuests)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []GuestRow
	for rows.Next() {
		var row GuestRow
		if err := rows.Scan(&row.ID, &row.Document, &row.FirstName, &row.LastName, &row.Email, &row.Phone); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

const updateGuest = `
UPDATE guests
SET document = $2, first_name = $3, last_name = $4, email = $5, phone = $6, updated_at = now()
WHERE id = $1
`

func (q *Queries) UpdateGuest(ctx context.Context, db DBTX, arg UpdateGuestParams) error {
	tag, err := db.Exec(ctx, updateGuest, arg.ID, arg.Document, arg.FirstName, arg.LastName, arg.Email, arg.Phone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const deleteGuest = `
DELETE FROM guests
WHERE id = $1
`

func (q *Queries) DeleteGuest(ctx context.Context, db DBTX, id int64) error {
	tag, err := db.Exec(ctx, deleteGuest, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
