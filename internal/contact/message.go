// Package contact validates contact form submissions and hands them to a
// Sender.
package contact

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form identifies which contact form a message came from.
type Form string

const (
	// FormPage is the full form on the contact page.
	FormPage Form = "page"
	// FormQuick is the short form on the home page. It has no subject.
	FormQuick Form = "quick"
)

// ParseForm maps a submitted form name to a Form. Unknown names are
// treated as the contact page form.
func ParseForm(name string) Form {
	if Form(name) == FormQuick {
		return FormQuick
	}
	return FormPage
}

// Message is a contact form submission.
type Message struct {
	Name    string `form:"name" validate:"min=2"`
	Email   string `form:"email" validate:"email"`
	Subject string `form:"subject" validate:"min=5"`
	Message string `form:"message" validate:"min=10"`
}

var fieldMessages = map[string]string{
	"Name":    "Name must be at least 2 characters.",
	"Email":   "Please enter a valid email address.",
	"Subject": "Subject must be at least 5 characters.",
	"Message": "Message must be at least 10 characters.",
}

// ValidationError lists the failing fields of a Message, keyed by form
// field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid contact message: " + strings.Join(parts, "; ")
}

// Validator checks messages against the rules of their form.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return &Validator{v: v}
}

// Validate returns a *ValidationError when m breaks a rule of form.
func (val *Validator) Validate(form Form, m Message) error {
	var err error
	if form == FormQuick {
		err = val.v.StructExcept(m, "Subject")
	} else {
		err = val.v.Struct(m)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = fieldMessages[fe.StructField()]
	}
	return verr
}
