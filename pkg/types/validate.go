package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid contact")

// ValidationKind names a rejected input.
type ValidationKind string

// Validation kinds.
const (
	MissingName        ValidationKind = "missing name"
	MissingPhone       ValidationKind = "missing phone"
	InvalidPhoneFormat ValidationKind = "invalid phone number format"
	InvalidEmailFormat ValidationKind = "invalid email format"
	DuplicateName      ValidationKind = "contact with this name already exists"
)

// ValidationError reports form input rejected before it reaches a store.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Value)
}

// Is reports ErrValidation as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unicode classes stand in for \d, \w and \s so non-ASCII digits, letters
// and spaces are accepted the same way as their ASCII counterparts. The space
// class also covers the separators \x1c-\x1f and NEL, which count as
// whitespace in Unicode-aware matching.
const (
	digit = `\p{Nd}`
	word  = `\p{L}\p{N}_`
	space = `\s\v\x1c-\x1f\x85\p{Z}`
)

var (
	// 7 to 15 characters of digits, + - ( ) and whitespace. A string of
	// dashes passes; the rule is a shape check only.
	phonePattern = regexp.MustCompile(`^[` + digit + `+\-()` + space + `]{7,15}$`)
	emailPattern = regexp.MustCompile(`^[` + word + `.\-]+@[` + word + `.\-]+\.[` + word + `]+$`)
)

// ValidPhone reports whether phone has an acceptable shape.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidEmail reports whether email has an acceptable shape. Callers skip the
// check for an empty email, which is allowed.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Normalize returns r with surrounding whitespace trimmed from every field.
func Normalize(r Record) Record {
	return Record{
		Name:    strings.TrimSpace(r.Name),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   strings.TrimSpace(r.Email),
		Address: strings.TrimSpace(r.Address),
	}
}

// Validate checks the field rules in the order a form reports them: name,
// phone presence, phone format, email format.
func Validate(r Record) error {
	if r.Name == "" {
		return &ValidationError{Kind: MissingName, Field: FieldName}
	}
	if r.Phone == "" {
		return &ValidationError{Kind: MissingPhone, Field: FieldPhone}
	}
	if !ValidPhone(r.Phone) {
		return &ValidationError{Kind: InvalidPhoneFormat, Field: FieldPhone, Value: r.Phone}
	}
	if r.Email != "" && !ValidEmail(r.Email) {
		return &ValidationError{Kind: InvalidEmailFormat, Field: FieldEmail, Value: r.Email}
	}
	return nil
}

// CheckDuplicate returns a DuplicateName error when any record in existing
// has name, compared case-insensitively.
func CheckDuplicate(existing []Record, name string) error {
	for _, r := range existing {
		if strings.ToLower(r.Name) == strings.ToLower(name) {
			return &ValidationError{Kind: DuplicateName, Field: FieldName, Value: name}
		}
	}
	return nil
}
