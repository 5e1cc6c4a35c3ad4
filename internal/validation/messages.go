package validation

// messages maps field name and failing rule to the text shown under the
// input.
var messages = map[string]map[string]string{
	"firstName": {
		"required": "First name is required",
		"min":      "First name must be at least 2 characters",
	},
	"lastName": {
		"required": "Last name is required",
		"min":      "Last name must be at least 2 characters",
	},
	"name": {
		"required": "Name is required",
		"min":      "Name must be at least 2 characters",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
	"confirmPassword": {
		"required": "Please confirm your password",
		"eqfield":  "Passwords must match",
	},
	"terms": {
		"accepted": "You must accept the terms and conditions",
	},
	"phone": {
		"required": "Phone number is required",
		"phone":    "Please enter a valid phone number",
	},
	"preferredDate": {
		"required": "Preferred date is required",
		"isodate":  "Please enter a valid date",
		"notpast":  "Date cannot be in the past",
	},
	"preferredTime": {
		"required": "Preferred time is required",
	},
	"sessionType": {
		"required": "Session type is required",
		"oneof":    "Please select a valid session type",
	},
	"message": {
		"required": "Message is required",
		"min":      "Message must be at least 10 characters",
		"max":      "Message cannot exceed 500 characters",
	},
	"subject": {
		"required": "Subject is required",
		"min":      "Subject must be at least 5 characters",
	},
	"resume": {
		"required": "Resume is required",
	},
	"coverLetter": {
		"required": "Cover letter is required",
		"min":      "Cover letter must be at least 50 characters",
		"max":      "Cover letter cannot exceed 1000 characters",
	},
	"linkedin": {
		"url": "Please enter a valid LinkedIn URL",
	},
	"portfolio": {
		"url": "Please enter a valid portfolio URL",
	},
	"availableStartDate": {
		"required": "Available start date is required",
		"isodate":  "Please enter a valid date",
		"notpast":  "Start date cannot be in the past",
	},
	"workAuthorization": {
		"required": "Work authorization status is required",
		"oneof":    "Please select a valid work authorization status",
	},
}

const (
	msgPasswordLength     = "Password must be at least 8 characters"
	msgPasswordComplexity = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
)

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return field + " is invalid"
}
