package customer

type Customer struct {
	ID          int64  `db:"id"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	PhoneNumber string `db:"phone_number"`
}

// ListItem is a customer row annotated with its owned-address count,
// as returned by List.
type ListItem struct {
	Customer
	AddressCount int64 `db:"address_count"`
}
