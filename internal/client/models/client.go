// Package models defines the data structures the client application works with.
package models

// Client is a customer record as returned by the backend. The copy held in
// memory is only trusted immediately after a successful search or update
// response; there is no background refresh.
type Client struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}
