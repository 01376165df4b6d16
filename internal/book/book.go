// Package book implements the in-memory address book keyed by contact name.
package book

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/smileynet/addrbook/internal/contact"
)

// ErrNotFound indicates no record exists under the requested name.
var ErrNotFound = errors.New("book: contact not found")

// AddressBook maps contact names to records and iterates in insertion order.
// It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*contact.Record
	order   []string
}

// New creates an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*contact.Record)}
}

// AddRecord inserts r under its name, overwriting any existing record.
// An overwritten name keeps its original position.
func (b *AddressBook) AddRecord(r *contact.Record) {
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == name })
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records yields every record in insertion order.
func (b *AddressBook) Records() iter.Seq[*contact.Record] {
	return func(yield func(*contact.Record) bool) {
		for _, key := range b.order {
			if !yield(b.records[key]) {
				return
			}
		}
	}
}
