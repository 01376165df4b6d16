// Package contact defines the validated value types that make up an address book entry.
package contact

import (
	"errors"
	"strings"
	"time"
)

// BirthdayLayout is the only accepted textual form of a birthday (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// phoneDigits is the exact length of a valid phone number.
const phoneDigits = 10

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("contact: validation failed")

// ValidationError reports a value rejected at construction.
// Msg is user-facing and printed verbatim by the command layer.
type ValidationError struct {
	Field string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Name identifies a contact and is the address book key.
type Name struct {
	value string
}

// NewName returns a Name, rejecting empty or blank values.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return Name{}, &ValidationError{Field: "name", Value: value, Msg: "Invalid name. Name cannot be empty."}
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly ten ASCII digits.
type Phone struct {
	value string
}

// NewPhone returns a Phone, rejecting anything that is not ten digits.
func NewPhone(value string) (Phone, error) {
	if !isPhone(value) {
		return Phone{}, &ValidationError{Field: "phone", Value: value, Msg: "Invalid phone number. Use 10 digits."}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

func isPhone(s string) bool {
	if len(s) != phoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date at midnight UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value in BirthdayLayout. Day and month must be zero-padded.
func NewBirthday(value string) (Birthday, error) {
	d, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: value, Msg: "Invalid date format. Use DD.MM.YYYY"}
	}
	return Birthday{date: d}, nil
}

// Date returns the birth date.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
