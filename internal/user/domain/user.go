// Package domain defines the core user domain entities and types.
package domain

import (
	"time"
)

// User represents a user account in the system.
// Password holds the Argon2id hash of the credential and is never serialized.
type User struct {
	ID        int64
	Email     string
	Username  string
	Password  string
	Phone     string
	Cell      string
	DOB       *time.Time
	PPS       string
	Gender    string
	Name      *Name
	Picture   *Picture
	Location  *Location
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name holds the optional name sub-object of a user profile.
type Name struct {
	Title string `json:"title,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Picture holds URIs for the user picture in three sizes.
type Picture struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// Location holds the optional postal address of a user.
// Street, city and state are required whenever the object is supplied.
type Location struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    int64  `json:"zip,omitempty"`
}

// Genders lists the accepted values for the gender attribute.
var Genders = []string{"male", "female", "other"}

// Page describes an offset/limit window into the user collection.
type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageResult holds one page of users and, when more results exist beyond
// this window, the window of the following page.
type PageResult struct {
	Items    []*User
	NextPage *Page
}
