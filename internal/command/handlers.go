package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/addrbook/internal/book"
	"github.com/smileynet/addrbook/internal/contact"
)

// Handler implements one command against the address book. Returned errors
// are flattened into a user-facing message by the Dispatcher.
type Handler func(args []string, b *book.AddressBook) (string, error)

// Fixed session messages.
const (
	Welcome  = "Welcome to the assistant bot!"
	Greeting = "How can I help you?"
	Farewell = "Good bye!"
	Invalid  = "Invalid command."
)

// Hello greets the user.
func Hello(_ []string, _ *book.AddressBook) (string, error) {
	return Greeting, nil
}

// AddContact creates a contact or appends a phone to an existing one.
// The phone is validated before a new contact is stored.
func AddContact(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", usage("add [name] [phone]")
	}
	name, phone := args[0], args[1]

	rec, found := b.Find(name)
	if !found {
		var err error
		if rec, err = contact.NewRecord(name); err != nil {
			return "", err
		}
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	if !found {
		b.AddRecord(rec)
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

// ChangeContact replaces one phone of a contact with another.
func ChangeContact(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 3 {
		return "", usage("change [name] [old phone] [new phone]")
	}
	name, old, next := args[0], args[1], args[2]

	rec, err := lookup(b, name)
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(old, next); err != nil {
		if errors.Is(err, contact.ErrPhoneNotFound) {
			return fmt.Sprintf("Phone number %s not found for %s.", old, name), nil
		}
		return "", err
	}
	return fmt.Sprintf("Phone number updated for %s from %s to %s.", name, old, next), nil
}

// RemovePhone deletes every occurrence of a phone from a contact.
func RemovePhone(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", usage("remove-phone [name] [phone]")
	}
	name, phone := args[0], args[1]

	rec, err := lookup(b, name)
	if err != nil {
		return "", err
	}
	if rec.RemovePhone(phone) == 0 {
		return fmt.Sprintf("Phone number %s not found for %s.", phone, name), nil
	}
	return fmt.Sprintf("Phone number %s removed for %s.", phone, name), nil
}

// ShowPhones lists the phones of a contact.
func ShowPhones(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", usage("phone [name]")
	}
	name := args[0]

	rec, err := lookup(b, name)
	if err != nil {
		return "", err
	}
	phones := rec.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("No phone numbers for %s.", name), nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return strings.Join(values, "; "), nil
}

// ShowAll lists every contact, one per line.
func ShowAll(_ []string, b *book.AddressBook) (string, error) {
	if b.Len() == 0 {
		return "Address book is empty.", nil
	}
	lines := make([]string, 0, b.Len())
	for rec := range b.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

// DeleteContact removes a contact.
func DeleteContact(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", usage("delete [name]")
	}
	name := args[0]

	if err := b.Delete(name); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return "", &KeyError{Name: name}
		}
		return "", err
	}
	return fmt.Sprintf("Contact '%s' deleted.", name), nil
}

// AddBirthday sets the birthday of a contact.
func AddBirthday(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 2 {
		return "", usage("add-birthday [name] [DD.MM.YYYY]")
	}
	name, value := args[0], args[1]

	rec, err := lookup(b, name)
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(value); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", name), nil
}

// ShowBirthday prints the birthday of a contact.
func ShowBirthday(args []string, b *book.AddressBook) (string, error) {
	if len(args) < 1 {
		return "", usage("show-birthday [name]")
	}
	name := args[0]

	rec, err := lookup(b, name)
	if err != nil {
		return "", err
	}
	bd, ok := rec.Birthday()
	if !ok {
		return fmt.Sprintf("%s has no birthday set.", name), nil
	}
	return fmt.Sprintf("%s's birthday: %s", name, bd), nil
}

// Birthdays returns a handler listing birthdays within days of now().
func Birthdays(now func() time.Time, days int) Handler {
	return func(_ []string, b *book.AddressBook) (string, error) {
		var lines []string
		for u := range b.UpcomingBirthdays(now(), days) {
			lines = append(lines, fmt.Sprintf("%s: %s", u.Name, u.Date.Format("02.01")))
		}
		if len(lines) == 0 {
			return noUpcoming(days), nil
		}
		return strings.Join(lines, "\n"), nil
	}
}

// Text returns a handler that always replies with text.
func Text(text string) Handler {
	return func(_ []string, _ *book.AddressBook) (string, error) {
		return text, nil
	}
}

func noUpcoming(days int) string {
	if days == book.DefaultWindow {
		return "No upcoming birthdays in the next week."
	}
	return fmt.Sprintf("No upcoming birthdays in the next %d days.", days)
}

func lookup(b *book.AddressBook, name string) (*contact.Record, error) {
	rec, ok := b.Find(name)
	if !ok {
		return nil, &KeyError{Name: name}
	}
	return rec, nil
}
