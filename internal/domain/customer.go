package domain

// CustomerProfile is the local identity record. StartedOn is the first
// delivery day; ledger statements are priced from it.
type CustomerProfile struct {
	ID        string
	Name      string
	Phone     string
	StartedOn *Date
}
