package teams

import (
	"strings"

	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

// Company is an organisation that fields rescue teams.
type Company struct {
	shared.BaseEntity
	Name      string
	TaxID     string
	Email     string
	Phone     string
	AddressID int64
	PhotoID   *int64
}

// CompanyKeySpecs declares the logical foreign keys carried by a company.
var CompanyKeySpecs = []reference.KeySpec{
	{Field: "address_id", Kind: reference.KindAddress, Required: true},
	{Field: "photo_id", Kind: reference.KindPhoto},
}

// NewCompany creates a company that has not been persisted yet
func NewCompany(name, taxID, email, phone string, addressID int64) *Company {
	c := &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		TaxID:      taxID,
		Email:      email,
		Phone:      phone,
		AddressID:  addressID,
	}
	c.Normalize()
	return c
}

// Normalize trims the text fields, upper-cases the tax id and lower-cases
// the email.
func (c *Company) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.ToUpper(strings.TrimSpace(c.TaxID))
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
}

// References binds CompanyKeySpecs to the company's current values.
func (c *Company) References() []reference.Key {
	return reference.Bind(CompanyKeySpecs, reference.ID(c.AddressID), c.PhotoID)
}
