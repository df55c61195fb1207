package repository

import (
	"context"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/domain/ident"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/infra/query"
)

type GuestQueries interface {
	CreateGuest(ctx context.Context, db query.DBTX, arg query.CreateGuestParams) (int64, error)
	GetGuestByID(ctx context.Context, db query.DBTX, id int64) (query.GuestRow, error)
	GetGuestByDocument(ctx context.Context, db query.DBTX, document string) (query.GuestRow, error)
	ListGuests(ctx context.Context, db query.DBTX) ([]query.GuestRow, error)
	UpdateGuest(ctx context.Context, db query.DBTX, arg query.UpdateGuestParams) error
	DeleteGuest(ctx context.Context, db query.DBTX, id int64) error
}

type GuestRepository struct {
	queries GuestQueries
	db      query.DBTX
}

func NewGuestRepository(queries GuestQueries, db query.DBTX) *GuestRepository {
	return &GuestRepository{queries: queries, db: db}
}

func (r *GuestRepository) Save(ctx context.Context, entity *guest.Guest) error {
	if entity.ID().IsSet() {
		return infra.WrapRepoErr("guest already persisted; use Update", nil, infra.KindDBFailure)
	}

	id, err := r.queries.CreateGuest(ctx, r.db, query.CreateGuestParams{
		Document:  entity.Document(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
	})
	if err != nil {
		return wrapPgErr("failed to save guest", err)
	}

	assigned, err := ident.New(id)
	if err != nil {
		return infra.WrapRepoErr("store returned an invalid guest identifier", err)
	}
	return entity.AssignID(assigned)
}

func (r *GuestRepository) FindByID(ctx context.Context, id ident.ID) (*guest.Guest, error) {
	if !id.IsSet() {
		return nil, infra.WrapRepoErr("guest identifier not assigned", nil, infra.KindNotFound)
	}
	row, err := r.queries.GetGuestByID(ctx, r.db, id.Int64())
	if err != nil {
		return nil, wrapPgErr("failed to find guest by id", err)
	}
	return guestFromRow(row)
}

func (r *GuestRepository) FindByDocument(ctx context.Context, document string) (*guest.Guest, error) {
	row, err := r.queries.GetGuestByDocument(ctx, r.db, document)
	if err != nil {
		return nil, wrapPgErr("failed to find guest by document", err)
	}
	return guestFromRow(row)
}

func (r *GuestRepository) FindAll(ctx context.Context) ([]*guest.Guest, error) {
	rows, err := r.queries.ListGuests(ctx, r.db)
	if err != nil {
		return nil, wrapPgErr("failed to list guests", err)
	}

	result := make([]*guest.Guest, 0, len(rows))
	for _, row := range rows {
		entity, err := guestFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *GuestRepository) Update(ctx context.Context, entity *guest.Guest) error {
	if !entity.ID().IsSet() {
		return infra.WrapRepoErr("guest identifier not assigned", nil, infra.KindNotFound)
	}

	err := r.queries.UpdateGuest(ctx, r.db, query.UpdateGuestParams{
		ID:        entity.ID().Int64(),
		Document:  entity.Document(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
	})
	if err != nil {
		return wrapPgErr("failed to update guest", err)
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id ident.ID) error {
	if !id.IsSet() {
		return infra.WrapRepoErr("guest identifier not assigned", nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteGuest(ctx, r.db, id.Int64()); err != nil {
		return wrapPgErr("failed to delete guest", err)
	}
	return nil
}

func guestFromRow(row query.GuestRow) (*guest.Guest, error) {
	id, err := ident.New(row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("stored guest has an invalid identifier", err)
	}
	return guest.Reconstruct(id, row.Document, row.FirstName, row.LastName, row.Email, row.Phone), nil
}
