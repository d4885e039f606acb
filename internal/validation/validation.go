// Package validation holds the pure field checks shared by the product,
// customer and order services. Nothing here touches storage.
package validation

import (
	"math"
	"strings"

	"github.com/laciaimperator/Online-store/internal/domain"
)

// Kind declares what a schema field may contain.
type Kind int

const (
	String Kind = iota
	// Number accepts both integer and floating-point values.
	Number
	// Integer accepts ints and integral floats; JSON decoding hands every
	// number over as float64.
	Integer
)

// Schema enumerates the expected kind per field for one entity.
type Schema map[string]Kind

// Types checks every supplied value against its declared kind. Fields absent
// from values are skipped, which is what partial updates rely on.
func Types(values map[string]interface{}, schema Schema) error {
	for field, kind := range schema {
		value, ok := values[field]
		if !ok {
			continue
		}
		if err := checkKind(field, value, kind); err != nil {
			return err
		}
	}
	return nil
}

func checkKind(field string, value interface{}, kind Kind) error {
	switch kind {
	case String:
		if _, ok := value.(string); !ok {
			return domain.NewError(domain.CodeTypeMismatch, "field %s must be a string", field)
		}
	case Number:
		if _, ok := AsFloat(value); !ok {
			return domain.NewError(domain.CodeTypeMismatch, "field %s must be a number", field)
		}
	case Integer:
		if _, ok := AsInt(value); !ok {
			return domain.NewError(domain.CodeTypeMismatch, "field %s must be an integer", field)
		}
	}
	return nil
}

// NonEmpty rejects string values that trim down to nothing. Numeric values
// are exempt.
func NonEmpty(values map[string]interface{}) error {
	for field, value := range values {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if len(strings.TrimSpace(s)) < 1 {
			return domain.NewError(domain.CodeEmptyField, "%s must be at least 1 character", field)
		}
	}
	return nil
}

// Email checks that the address has a non-empty local part before the first
// "@" and a domain with non-empty labels around its first ".". The domain is
// the segment between the first and second "@"; text past a second "@" or a
// second "." is deliberately not inspected.
func Email(email string) error {
	at := strings.Index(email, "@")
	if at < 0 {
		return domain.NewError(domain.CodeInvalidEmail, "invalid email %s: must include @", email)
	}
	local, dom := email[:at], email[at+1:]
	if next := strings.Index(dom, "@"); next >= 0 {
		dom = dom[:next]
	}
	if local == "" {
		return domain.NewError(domain.CodeInvalidEmail, "invalid email %s: username can't be empty", email)
	}
	if dom == "" {
		return domain.NewError(domain.CodeInvalidEmail, "invalid email %s: domain can't be empty", email)
	}
	dot := strings.Index(dom, ".")
	if dot < 0 {
		return domain.NewError(domain.CodeInvalidEmail, "invalid email %s: domain must include .", email)
	}
	if dom[:dot] == "" {
		return domain.NewError(domain.CodeInvalidEmail, "invalid email %s: left side of domain can't be empty", email)
	}
	rest := dom[dot+1:]
	if next := strings.Index(rest, "."); next >= 0 {
		rest = rest[:next]
	}
	if rest == "" {
		return domain.NewError(domain.CodeInvalidEmail, "invalid email %s: right side of domain can't be empty", email)
	}
	return nil
}

// Phone permits digits plus '-', '(', ')' and ' ', and requires at least
// seven digits overall.
func Phone(phone string) error {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == '(' || r == ')' || r == ' ':
		default:
			return domain.NewError(domain.CodeInvalidPhone, "invalid phone number %s: can't include %q", phone, r)
		}
	}
	if digits < 7 {
		return domain.NewError(domain.CodeInvalidPhone, "invalid phone number %s: can't be less than 7 digits", phone)
	}
	return nil
}

// AsInt converts a decoded JSON value to int when it carries an integral
// number.
func AsInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// AsFloat converts a decoded JSON value to float64 when it carries any
// numeric type.
func AsFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
