// Package validation checks submitted forms and reports every failing field
// at once.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of date inputs.
const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)

// FieldErrors maps a form field to its messages. A nil map means valid.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validator evaluates the form rules.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

type Option func(*Validator)

// WithClock sets the reference time for "not in the past" rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func New(opts ...Option) *Validator {
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: time.Now}
	for _, opt := range opts {
		opt(val)
	}

	val.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// Registration only fails on empty tags or nil funcs.
	_ = val.v.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
		return len(passwordProblems(fl.Field().String())) == 0
	})
	_ = val.v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = val.v.RegisterValidation("accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	})
	_ = val.v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	_ = val.v.RegisterValidation("notpast", val.notPast)
	return val
}

// notPast accepts today and later in the reference clock's location.
func (val *Validator) notPast(fl validator.FieldLevel) bool {
	now := val.now()
	d, err := time.ParseInLocation(DateLayout, fl.Field().String(), now.Location())
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !d.Before(today)
}

// Validate runs every rule of form. The first failing rule of each field is
// reported, except passwords which list each unmet requirement.
func (val *Validator) Validate(form any) FieldErrors {
	err := val.v.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": {err.Error()}}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if fe.Tag() == "strongpw" {
			for _, msg := range passwordProblems(fe.Value().(string)) {
				out.add(field, msg)
			}
			continue
		}
		out.add(field, message(field, fe.Tag()))
	}
	return out
}

func passwordProblems(pw string) []string {
	var problems []string
	// Length counts UTF-16 code units, as the browser form does.
	if len(utf16.Encode([]rune(pw))) < 8 {
		problems = append(problems, msgPasswordLength)
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case 'A' <= r && r <= 'Z':
			upper = true
		case 'a' <= r && r <= 'z':
			lower = true
		case '0' <= r && r <= '9':
			digit = true
		}
	}
	if !upper || !lower || !digit {
		problems = append(problems, msgPasswordComplexity)
	}
	return problems
}
