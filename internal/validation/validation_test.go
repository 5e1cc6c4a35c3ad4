package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

func newValidator() *Validator {
	return New(WithClock(func() time.Time { return fixedNow }))
}

func validSignup() SignupForm {
	return SignupForm{
		FirstName:       "Ada",
		LastName:        "Byron",
		Email:           "a@b.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
		Terms:           true,
	}
}

func TestSignupValid(t *testing.T) {
	assert.Nil(t, newValidator().Validate(validSignup()))
}

func TestSignupShortPassword(t *testing.T) {
	form := validSignup()
	form.Password = "short"
	form.ConfirmPassword = "short"

	errs := newValidator().Validate(form)
	require.NotNil(t, errs)
	assert.Equal(t, []string{msgPasswordLength, msgPasswordComplexity}, errs["password"])
	assert.NotContains(t, errs, "confirmPassword")
}

func TestPasswordRules(t *testing.T) {
	tests := []struct {
		password string
		want     []string
	}{
		{"Abcdefg1", nil},
		{"Ébcdefg1", []string{msgPasswordComplexity}},
		{"ABCDEFG١", []string{msgPasswordComplexity}},
		{"Abcdéf1", []string{msgPasswordLength}},
		{"Abc😀de1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, passwordProblems(tt.password))
		})
	}
}

func TestSignupReportsEveryField(t *testing.T) {
	errs := newValidator().Validate(SignupForm{Password: "abcdefgh", ConfirmPassword: "x"})
	require.NotNil(t, errs)

	assert.Equal(t, []string{"First name is required"}, errs["firstName"])
	assert.Equal(t, []string{"Last name is required"}, errs["lastName"])
	assert.Equal(t, []string{"Email is required"}, errs["email"])
	assert.Equal(t, []string{msgPasswordComplexity}, errs["password"])
	assert.Equal(t, []string{"Passwords must match"}, errs["confirmPassword"])
	assert.Equal(t, []string{"You must accept the terms and conditions"}, errs["terms"])
	assert.Contains(t, errs.Error(), "validation failed: ")
}

func TestLogin(t *testing.T) {
	v := newValidator()
	tests := []struct {
		name string
		form LoginForm
		want FieldErrors
	}{
		{"valid", LoginForm{Email: "a@b.com", Password: "secret"}, nil},
		{"empty", LoginForm{}, FieldErrors{
			"email":    {"Email is required"},
			"password": {"Password is required"},
		}},
		{"bad email and short password", LoginForm{Email: "nope", Password: "123"}, FieldErrors{
			"email":    {"Please enter a valid email address"},
			"password": {"Password must be at least 6 characters"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.form))
		})
	}
}

func validBooking() BookingForm {
	return BookingForm{
		FirstName:     "Ada",
		LastName:      "Byron",
		Email:         "a@b.com",
		Phone:         "+15551234567",
		PreferredDate: "2026-10-19",
		PreferredTime: "10:00",
		SessionType:   "resume-review",
	}
}

func TestBooking(t *testing.T) {
	v := newValidator()
	assert.Nil(t, v.Validate(validBooking()), "today is not in the past")

	tests := []struct {
		name  string
		edit  func(*BookingForm)
		field string
		want  string
	}{
		{"yesterday", func(f *BookingForm) { f.PreferredDate = "2026-10-18" }, "preferredDate", "Date cannot be in the past"},
		{"garbage date", func(f *BookingForm) { f.PreferredDate = "next week" }, "preferredDate", "Please enter a valid date"},
		{"phone leading zero", func(f *BookingForm) { f.Phone = "0123" }, "phone", "Please enter a valid phone number"},
		{"phone too long", func(f *BookingForm) { f.Phone = "12345678901234567" }, "phone", "Please enter a valid phone number"},
		{"session type", func(f *BookingForm) { f.SessionType = "yoga" }, "sessionType", "Please select a valid session type"},
		{"long message", func(f *BookingForm) { f.Message = strings.Repeat("x", 501) }, "message", "Message cannot exceed 500 characters"},
		{"missing time", func(f *BookingForm) { f.PreferredTime = "" }, "preferredTime", "Preferred time is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBooking()
			tt.edit(&form)
			errs := v.Validate(form)
			require.Len(t, errs, 1)
			assert.Equal(t, []string{tt.want}, errs[tt.field])
		})
	}
}

func validApplication() JobApplicationForm {
	return JobApplicationForm{
		FirstName:          "Ada",
		LastName:           "Byron",
		Email:              "a@b.com",
		Phone:              "5551234567",
		Resume:             "resume.pdf",
		CoverLetter:        strings.Repeat("I would love to work here. ", 3),
		AvailableStartDate: "2026-11-01",
		WorkAuthorization:  "citizen",
	}
}

func TestJobApplication(t *testing.T) {
	v := newValidator()
	assert.Nil(t, v.Validate(validApplication()))

	form := validApplication()
	form.CoverLetter = "too short"
	form.LinkedIn = "not a url"
	form.Portfolio = "https://example.com/me"
	form.AvailableStartDate = "2020-01-01"
	form.WorkAuthorization = "tourist"
	form.Resume = ""

	assert.Equal(t, FieldErrors{
		"coverLetter":        {"Cover letter must be at least 50 characters"},
		"linkedin":           {"Please enter a valid LinkedIn URL"},
		"availableStartDate": {"Start date cannot be in the past"},
		"workAuthorization":  {"Please select a valid work authorization status"},
		"resume":             {"Resume is required"},
	}, v.Validate(form))
}

func TestContact(t *testing.T) {
	errs := newValidator().Validate(ContactForm{Name: "A", Email: "a@b.com", Subject: "Hi", Message: "short"})
	assert.Equal(t, FieldErrors{
		"name":    {"Name must be at least 2 characters"},
		"subject": {"Subject must be at least 5 characters"},
		"message": {"Message must be at least 10 characters"},
	}, errs)
}

func TestEmailOnlyForms(t *testing.T) {
	v := newValidator()
	assert.Nil(t, v.Validate(NewsletterForm{Email: "a@b.com"}))
	assert.Equal(t, FieldErrors{"email": {"Please enter a valid email address"}}, v.Validate(ForgotPasswordForm{Email: "a@"}))
}
