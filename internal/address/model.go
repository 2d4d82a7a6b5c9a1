package address

type Address struct {
	ID             int64  `db:"id"`
	CustomerID     int64  `db:"customer_id"`
	AddressDetails string `db:"address_details"`
	City           string `db:"city"`
	State          string `db:"state"`
	PinCode        string `db:"pin_code"`
	IsDefault      bool   `db:"is_default"`
}
