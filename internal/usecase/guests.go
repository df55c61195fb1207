package usecase

import (
	"context"
	"errors"

	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/infra"
	"hotel-nova/internal/pkg/errs"
	"hotel-nova/internal/usecase/shared"
)

var ErrGuestNotFound = errors.New("guest not found")

type RegisterGuestParams struct {
	Document  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type GuestUseCase interface {
	// RegisterGuest is idempotent over the national document: registering
	// an already known guest returns the stored record unchanged. The bool
	// reports whether a new record was created.
	RegisterGuest(ctx context.Context, params RegisterGuestParams) (*guest.Guest, bool, error)
	FindGuestByDocument(ctx context.Context, document string) (*guest.Guest, error)
	// UpdateGuestContact replaces the stored email and phone for the
	// guest holding the document.
	UpdateGuestContact(ctx context.Context, document, email, phone string) (*guest.Guest, error)
	ListGuests(ctx context.Context) ([]*guest.Guest, error)
}

type guestUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewGuestUseCase(uow shared.UnitOfWork) GuestUseCase {
	return &guestUseCaseImpl{uow: uow}
}

func (u *guestUseCaseImpl) RegisterGuest(ctx context.Context, params RegisterGuestParams) (*guest.Guest, bool, error) {
	entity, err := guest.NewGuest(params.Document, params.FirstName, params.LastName, params.Email, params.Phone)
	if err != nil {
		return nil, false, err
	}

	// single-entity write, no transaction needed; the unique constraint on
	// the document settles races the pre-check misses
	guests := u.uow.Repos().Guests()

	existing, err := guests.FindByDocument(ctx, entity.Document())
	switch {
	case err == nil:
		return existing, false, nil
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, false, errs.Mark(err, ErrStorageFailure)
	}

	if err := guests.Save(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			existing, findErr := guests.FindByDocument(ctx, entity.Document())
			if findErr != nil {
				return nil, false, errs.Mark(findErr, ErrStorageFailure)
			}
			return existing, false, nil
		}
		return nil, false, errs.Mark(err, ErrStorageFailure)
	}
	return entity, true, nil
}

func (u *guestUseCaseImpl) FindGuestByDocument(ctx context.Context, document string) (*guest.Guest, error) {
	entity, err := u.uow.Repos().Guests().FindByDocument(ctx, document)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return entity, nil
}

func (u *guestUseCaseImpl) UpdateGuestContact(ctx context.Context, document, email, phone string) (*guest.Guest, error) {
	guests := u.uow.Repos().Guests()

	entity, err := guests.FindByDocument(ctx, document)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	entity.UpdateContact(email, phone)
	if err := guests.Update(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return entity, nil
}

func (u *guestUseCaseImpl) ListGuests(ctx context.Context) ([]*guest.Guest, error) {
	guests, err := u.uow.Repos().Guests().FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return guests, nil
}
