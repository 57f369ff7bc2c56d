// Package model defines the records querykit operates on.
package model

import "strings"

// Person is a sample record. Email may be empty.
type Person struct {
	FirstName string `json:"first_name" yaml:"first_name" toml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name" toml:"last_name"`
	Age       int    `json:"age" yaml:"age" toml:"age"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty" toml:"email"`
}

// FullName returns "First Last", skipping empty parts.
func (p Person) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// HasEmail reports whether the person has a non-blank email address.
func (p Person) HasEmail() bool {
	return strings.TrimSpace(p.Email) != ""
}

// Contact is the projected shape used when only a name and email status are needed.
type Contact struct {
	FullName       string `json:"full_name"`
	ConfirmedEmail bool   `json:"confirmed_email"`
}

// ToContact projects a person to a Contact.
func ToContact(p Person) Contact {
	return Contact{FullName: p.FullName(), ConfirmedEmail: p.HasEmail()}
}

// NumberSet is an ordered sequence of integers. Duplicates are allowed.
type NumberSet []int
