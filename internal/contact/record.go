package contact

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrPhoneNotFound indicates a phone lookup on a record missed.
var ErrPhoneNotFound = errors.New("contact: phone not found")

// Record is one contact: a name, its phones in insertion order, and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the record's phones.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates value and appends it. Duplicates are allowed.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first phone equal to old with next.
// The record is unchanged if next is invalid or old is absent.
func (r *Record) EditPhone(old, next string) error {
	i := r.indexOf(old)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, old)
	}
	p, err := NewPhone(next)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// RemovePhone removes every phone equal to value and returns how many were removed.
func (r *Record) RemovePhone(value string) int {
	before := len(r.phones)
	r.phones = slices.DeleteFunc(r.phones, func(p Phone) bool {
		return p.value == value
	})
	return before - len(r.phones)
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday parses value and stores it, replacing any previous birthday.
func (r *Record) AddBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool {
		return p.value == value
	})
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(phones, "; "))
}
