package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"user-registration-api/internal/domain/user"
	userDTO "user-registration-api/internal/interface/api/rest/dto/user"
)

var (
	// (DD) DDDD-DDDD landline, (DD) DDDDD-DDDD mobile
	phoneRe = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	// CEP: DDDDD-DDD
	zipCodeRe = regexp.MustCompile(`^\d{5}-\d{3}$`)

	// the 27 Brazilian state / federal district codes
	brStates = map[string]struct{}{
		"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
		"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
		"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
		"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
	}
)

// FieldError is one (field, reason) pair reported back to the client.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func ValidateID(s string) (user.ID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid user id")
	}
	return user.ID(id), nil
}

// IsEmail accepts plain local@domain.tld addresses only: no display names,
// and the domain must contain a period.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(addr.Address, "@")
	return strings.Contains(addr.Address[at+1:], ".")
}

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func IsZipCode(s string) bool {
	return zipCodeRe.MatchString(s)
}

func IsState(s string) bool {
	_, ok := brStates[strings.ToUpper(s)]
	return ok
}

// ValidateUser checks every field independently and accumulates one error per
// problem, so the client sees the full list in a single pass. Email uniqueness
// is not checked here; that belongs to the store.
func ValidateUser(r userDTO.Request) []FieldError {
	var errs []FieldError

	// Normalize
	fullName := strings.TrimSpace(r.FullName)
	email := strings.TrimSpace(r.Email)
	phone := strings.TrimSpace(r.Phone)
	zipCode := strings.TrimSpace(r.ZipCode)
	address := strings.TrimSpace(r.Address)
	number := strings.TrimSpace(r.Number)
	city := strings.TrimSpace(r.City)
	state := strings.TrimSpace(r.State)

	// full_name (required)
	if fullName == "" {
		errs = append(errs, FieldError{"full_name", "full_name is required"})
	}

	// email (required + format)
	if email == "" {
		errs = append(errs, FieldError{"email", "email is required"})
	} else if !IsEmail(email) {
		errs = append(errs, FieldError{"email", "invalid email format"})
	}

	// phone (required + Brazilian format)
	if phone == "" {
		errs = append(errs, FieldError{"phone", "phone is required"})
	} else if !IsPhone(phone) {
		errs = append(errs, FieldError{"phone", "invalid phone format, use (XX) XXXXX-XXXX or (XX) XXXX-XXXX"})
	}

	// zip_code (required + CEP format)
	if zipCode == "" {
		errs = append(errs, FieldError{"zip_code", "zip_code is required"})
	} else if !IsZipCode(zipCode) {
		errs = append(errs, FieldError{"zip_code", "invalid zip code format, use XXXXX-XXX"})
	}

	// address (required)
	if address == "" {
		errs = append(errs, FieldError{"address", "address is required"})
	}

	// number (required)
	if number == "" {
		errs = append(errs, FieldError{"number", "number is required"})
	}

	// city (required)
	if city == "" {
		errs = append(errs, FieldError{"city", "city is required"})
	}

	// state (required + membership)
	if state == "" {
		errs = append(errs, FieldError{"state", "state is required"})
	} else if !IsState(state) {
		errs = append(errs, FieldError{"state", "invalid state abbreviation"})
	}

	// terms_accepted (required + strictly true)
	if r.TermsAccepted == nil {
		errs = append(errs, FieldError{"terms_accepted", "terms_accepted is required"})
	} else if !*r.TermsAccepted {
		errs = append(errs, FieldError{"terms_accepted", "terms must be accepted"})
	}

	return errs
}
