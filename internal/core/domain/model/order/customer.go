package order

import (
	"errors"
	"strings"

	"bakery/internal/pkg/errs"
)

var (
	ErrCustomerNameIsRequired  = errs.NewValueIsRequiredError("customer full name")
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone number")
)

// Customer is owned by its order; it has no identity of its own.
type Customer struct {
	fullName    string
	phoneNumber string
	details     string
}

// NewCustomer validates name and phone. details is optional free text such as
// "Very important customer".
func NewCustomer(fullName, phoneNumber, details string) (Customer, error) {
	c := Customer{
		fullName:    strings.TrimSpace(fullName),
		phoneNumber: strings.TrimSpace(phoneNumber),
		details:     details,
	}
	if err := c.Validate(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) Validate() error {
	var err error
	if c.fullName == "" {
		err = errors.Join(err, ErrCustomerNameIsRequired)
	}
	if c.phoneNumber == "" {
		err = errors.Join(err, ErrCustomerPhoneIsRequired)
	}
	return err
}

// IsEmpty reports the blank customer a new order starts with.
func (c Customer) IsEmpty() bool {
	return c == Customer{}
}

func (c Customer) FullName() string    { return c.fullName }
func (c Customer) PhoneNumber() string { return c.phoneNumber }
func (c Customer) Details() string     { return c.details }
