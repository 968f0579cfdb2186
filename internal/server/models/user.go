package models

// User is a registered account. IDs are UUIDs generated by the database.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
