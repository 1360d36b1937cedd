package models

// AddressPatch carries a partial address update. A nil field leaves the
// stored value untouched; a non-nil field overwrites it. There is no way to
// clear a previously set field through a patch.
type AddressPatch struct {
	Line1    *string `json:"line1"`
	Line2    *string `json:"line2"`
	Line3    *string `json:"line3"`
	Town     *string `json:"town"`
	County   *string `json:"county"`
	Postcode *string `json:"postcode"`
}

// Merge applies the patch to an existing address and returns the result.
// existing may be nil, in which case a fresh address is built from the
// supplied fields only. The inputs are never mutated.
func (p *AddressPatch) Merge(existing *Address) *Address {
	if p == nil {
		return existing
	}
	merged := Address{}
	if existing != nil {
		merged = *existing
	}
	if p.Line1 != nil {
		merged.Line1 = *p.Line1
	}
	if p.Line2 != nil {
		merged.Line2 = *p.Line2
	}
	if p.Line3 != nil {
		merged.Line3 = *p.Line3
	}
	if p.Town != nil {
		merged.Town = *p.Town
	}
	if p.County != nil {
		merged.County = *p.County
	}
	if p.Postcode != nil {
		merged.Postcode = *p.Postcode
	}
	return &merged
}

// UserPatch carries a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Address     *AddressPatch
}

// Apply overwrites the non-nil top-level fields of u and merges the address
// patch into the stored address.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Address != nil {
		u.Address = p.Address.Merge(u.Address)
	}
}
