//go:build unit || e2e

package builder

import (
	"hotel-nova/internal/domain/guest"
	"hotel-nova/internal/domain/ident"
	reqdto "hotel-nova/internal/handler/dto/request"
	"hotel-nova/internal/usecase"
)

type GuestBuilder struct {
	ID        int64
	Document  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:        1,
		Document:  "X-1234567",
		FirstName: "Ana",
		LastName:  "Morales",
		Email:     "ana.morales@example.com",
		Phone:     "+34 600 000 001",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	return guest.NewGuest(b.Document, b.FirstName, b.LastName, b.Email, b.Phone)
}

func (b *GuestBuilder) BuildPersisted() *guest.Guest {
	id, _ := ident.New(b.ID)
	return guest.Reconstruct(id, b.Document, b.FirstName, b.LastName, b.Email, b.Phone)
}

func (b *GuestBuilder) BuildRegisterRequestDTO() reqdto.RegisterGuestRequest {
	return reqdto.RegisterGuestRequest{
		Document:  b.Document,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
	}
}

func (b *GuestBuilder) BuildRegisterParams() usecase.RegisterGuestParams {
	return usecase.RegisterGuestParams{
		Document:  b.Document,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Phone:     b.Phone,
	}
}
