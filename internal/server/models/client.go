package models

// Client is a customer record. The JSON tags define the wire format shared
// with the CLI client.
type Client struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}
