package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userDTO "user-registration-api/internal/interface/api/rest/dto/user"
)

func boolPtr(b bool) *bool { return &b }

func validRequest() userDTO.Request {
	return userDTO.Request{
		FullName:      "John Doe",
		Email:         "john@example.com",
		Phone:         "(11) 98765-4321",
		ZipCode:       "12345-678",
		Address:       "Main Street",
		Number:        "123",
		City:          "São Paulo",
		State:         "SP",
		TermsAccepted: boolPtr(true),
	}
}

func fields(errs []FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidateUser_Valid(t *testing.T) {
	require.Nil(t, ValidateUser(validRequest()))
}

func TestValidateUser_AllFieldsMissing(t *testing.T) {
	errs := ValidateUser(userDTO.Request{})

	assert.ElementsMatch(t, []string{
		"full_name", "email", "phone", "zip_code",
		"address", "number", "city", "state", "terms_accepted",
	}, fields(errs))
}

func TestValidateUser_AccumulatesAcrossFields(t *testing.T) {
	r := validRequest()
	r.FullName = ""
	r.Phone = "11 98765-4321"
	r.State = "XX"

	errs := ValidateUser(r)
	assert.ElementsMatch(t, []string{"full_name", "phone", "state"}, fields(errs))
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(11) 98765-4321", true}, // mobile, 5-digit subscriber
		{"(11) 8765-4321", true},  // landline, 4-digit subscriber
		{"(1) 98765-4321", false},
		{"(111) 98765-4321", false},
		{"11 98765-4321", false},
		{"(11)98765-4321", false},
		{"(11) 987654321", false},
		{"(11) 98765-432", false},
		{"(11) 98765-43210", false},
		{"+5511987654321", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.phone))
		})
	}
}

func TestIsZipCode(t *testing.T) {
	tests := []struct {
		zip  string
		want bool
	}{
		{"12345-678", true},
		{"01310-100", true},
		{"12345678", false},
		{"1234-567", false},
		{"12345-67", false},
		{"12345-6789", false},
		{"abcde-fgh", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.zip, func(t *testing.T) {
			assert.Equal(t, tt.want, IsZipCode(tt.zip))
		})
	}
}

func TestIsState(t *testing.T) {
	all := []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
		"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
		"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
	}
	for _, s := range all {
		assert.True(t, IsState(s), s)
	}

	// membership is case-insensitive
	assert.True(t, IsState("sp"))
	assert.True(t, IsState("rj"))

	for _, s := range []string{"XX", "S", "SPP", "", "US"} {
		assert.False(t, IsState(s), s)
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("john@example.com"))
	assert.True(t, IsEmail("a.b+c@sub.domain.org"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("missing@domain@twice.com"))
	assert.False(t, IsEmail("John Doe <john@example.com>"))
	assert.False(t, IsEmail("<john@example.com>"))
	assert.False(t, IsEmail("john@example"))
	assert.False(t, IsEmail(""))
}

func TestValidateUser_Terms(t *testing.T) {
	r := validRequest()

	r.TermsAccepted = nil
	errs := ValidateUser(r)
	require.Len(t, errs, 1)
	assert.Equal(t, "terms_accepted", errs[0].Field)

	r.TermsAccepted = boolPtr(false)
	errs = ValidateUser(r)
	require.Len(t, errs, 1)
	assert.Equal(t, "terms must be accepted", errs[0].Reason)
}

func TestValidateID(t *testing.T) {
	id, err := ValidateID("42")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, s := range []string{"abc", "", "0", "-1", "1.5"} {
		_, err = ValidateID(s)
		assert.Error(t, err, s)
	}
}
