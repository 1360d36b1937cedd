package models

import "time"

// Address is the nested postal address stored against a user. Line2 and
// Line3 are optional columns; the rest are required whenever an address is
// supplied on the creation path.
type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
}

// User is both the write model and the API representation. The server
// generates ID on creation and it is immutable afterwards.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     *Address  `json:"address,omitempty"`
	CreatedAt   time.Time `json:"createdTimestamp"`
	UpdatedAt   time.Time `json:"updatedTimestamp"`
}

// Account types accepted on the creation path.
const (
	AccountTypePersonal = "personal"
	AccountTypeBusiness = "business"
)

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t string) bool {
	return t == AccountTypePersonal || t == AccountTypeBusiness
}

// Account is keyed by the owning user's identifier: one account row per
// user id. The row key is never serialised as its own field; account number
// and sort code are the public identifiers.
type Account struct {
	ID            string    `json:"-"`
	AccountNumber string    `json:"accountNumber"`
	SortCode      string    `json:"sortCode"`
	Name          string    `json:"name"`
	AccountType   string    `json:"accountType"`
	Balance       int64     `json:"balance"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"createdTimestamp"`
	UpdatedAt     time.Time `json:"updatedTimestamp"`
}
