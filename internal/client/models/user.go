// Package models defines client-side domain types shown by the feed CLI.
package models

// User is a registered author of posts. ID is the only cache key.
type User struct {
	ID       int64
	Name     string
	Username string
	Avatar   string
	Email    string
	Phone    string
	Website  string
	Address  Address
	Company  Company

	// Partial is set on users rebuilt from the local cache. The cache does
	// not persist street, geo or company, so those fields are zero.
	Partial bool
}

type Address struct {
	Street  string
	Suite   string
	City    string
	Zipcode string
	Geo     Geo
}

type Geo struct {
	Lat string
	Lng string
}

type Company struct {
	Name        string
	CatchPhrase string
	BS          string
}
