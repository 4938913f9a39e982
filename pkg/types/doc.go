// Package types defines the Record entity, the AddressBook interface, input
// validation rules and the standard errors for the address book.
package types
