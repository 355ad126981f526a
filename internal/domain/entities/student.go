package entities

import "time"

// Student is the payer profile. Only the fields the reconciliation core needs
// are modeled: identity plus the profile address used as the shipping fallback
// when a checkout carried no shipping snapshot.
//
// Storage model (DynamoDB):
//   - PK: id

type Student struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ProfileShipping builds a shipping snapshot from the profile address.
func (s Student) ProfileShipping() ShippingInfo {
	return ShippingInfo{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
		City:    s.City,
		Country: s.Country,
	}
}
