package guest

import (
	"errors"
	"strings"

	"hotel-nova/internal/domain/ident"
)

var (
	ErrEmptyDocument    = errors.New("guest document cannot be empty")
	ErrEmptyName        = errors.New("guest name cannot be empty")
	ErrAlreadyPersisted = errors.New("guest already has a persistent identifier")
)

// Guest is identified to the business by a national document; the storage
// identifier only exists once the record has been saved.
type Guest struct {
	id        ident.ID
	document  string
	firstName string
	lastName  string
	email     string
	phone     string
}

func NewGuest(document, firstName, lastName, email, phone string) (*Guest, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, ErrEmptyDocument
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}

	return &Guest{
		document:  document,
		firstName: firstName,
		lastName:  lastName,
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
	}, nil
}

func Reconstruct(id ident.ID, document, firstName, lastName, email, phone string) *Guest {
	return &Guest{
		id:        id,
		document:  document,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
	}
}

func (g *Guest) AssignID(id ident.ID) error {
	if g.id.IsSet() {
		return ErrAlreadyPersisted
	}
	g.id = id
	return nil
}

// UpdateContact is the only mutation outside registration.
func (g *Guest) UpdateContact(email, phone string) {
	g.email = strings.TrimSpace(email)
	g.phone = strings.TrimSpace(phone)
}

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}

func (g *Guest) ID() ident.ID      { return g.id }
func (g *Guest) Document() string  { return g.document }
func (g *Guest) FirstName() string { return g.firstName }
func (g *Guest) LastName() string  { return g.lastName }
func (g *Guest) Email() string     { return g.email }
func (g *Guest) Phone() string     { return g.phone }
