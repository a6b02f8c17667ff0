package validators

import (
	"testing"

	"github.com/petlove/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsValidNoticeQuery(t *testing.T) {
	v := NewValidator()
	req := models.ListNoticesRequest{
		Category:   "lost",
		Species:    "butterfly",
		Sex:        "multiple",
		LocationID: "64b7f0c2a1b2c3d4e5f60718",
		Page:       1,
		Limit:      6,
	}
	assert.NoError(t, v.Validate(&req))
}

func TestValidateReportsFieldsByWireName(t *testing.T) {
	v := NewValidator()
	req := models.ListNoticesRequest{
		Category:   "adopt",
		LocationID: "xyz",
		Page:       1,
		Limit:      6,
	}

	err := v.Validate(&req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "category")
	assert.Equal(t, "This id is not valid", fields["locationId"])
}

func TestValidateSignup(t *testing.T) {
	v := NewValidator()
	ok := models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "abc123", ConfirmPassword: "abc123"}
	assert.NoError(t, v.Validate(&ok))

	mismatch := ok
	mismatch.ConfirmPassword = "abc124"
	err := v.Validate(&mismatch)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldError{Field: "confirmPassword", Message: "Passwords do not match"}, verr.Fields[0])

	noDigit := ok
	noDigit.Password, noDigit.ConfirmPassword = "abcdef", "abcdef"
	assert.Error(t, v.Validate(&noDigit))
}

func TestValidatePhone(t *testing.T) {
	v := NewValidator()
	for phone, valid := range map[string]bool{
		"+380501234567": true,
		"380501234567":  true,
		"+0123":         false,
		"050-123-4567":  false,
	} {
		p := phone
		err := v.Validate(&models.EditUserRequest{Phone: &p})
		assert.Equal(t, valid, err == nil, phone)
	}
}

func TestValidatePetEnums(t *testing.T) {
	v := NewValidator()
	req := models.AddPetRequest{
		Name:     "Rex",
		Title:    "Good boy",
		ImgURL:   "https://example.com/rex.png",
		Species:  "other",
		Birthday: "2020-01-01",
		Sex:      "unknown",
	}
	assert.NoError(t, v.Validate(&req))

	req.Species = "monkey"
	assert.Error(t, v.Validate(&req))
}
