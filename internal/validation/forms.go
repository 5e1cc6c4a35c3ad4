package validation

// Session types a counselling booking may ask for.
var SessionTypes = []string{"career-planning", "resume-review", "interview-prep", "job-search-strategy"}

// WorkAuthorizations accepted on a job application.
var WorkAuthorizations = []string{"citizen", "permanent-resident", "visa-holder", "need-sponsorship"}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type SignupForm struct {
	FirstName       string `json:"firstName" validate:"required,min=2"`
	LastName        string `json:"lastName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,strongpw"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Terms           bool   `json:"terms" validate:"accepted"`
}

type BookingForm struct {
	FirstName     string `json:"firstName" validate:"required,min=2"`
	LastName      string `json:"lastName" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,phone"`
	PreferredDate string `json:"preferredDate" validate:"required,isodate,notpast"`
	PreferredTime string `json:"preferredTime" validate:"required"`
	SessionType   string `json:"sessionType" validate:"required,oneof=career-planning resume-review interview-prep job-search-strategy"`
	Message       string `json:"message" validate:"omitempty,max=500"`
}

type JobApplicationForm struct {
	FirstName          string `json:"firstName" validate:"required,min=2"`
	LastName           string `json:"lastName" validate:"required,min=2"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"required,phone"`
	Resume             string `json:"resume" validate:"required"`
	CoverLetter        string `json:"coverLetter" validate:"required,min=50,max=1000"`
	LinkedIn           string `json:"linkedin" validate:"omitempty,url"`
	Portfolio          string `json:"portfolio" validate:"omitempty,url"`
	ExpectedSalary     string `json:"expectedSalary"`
	AvailableStartDate string `json:"availableStartDate" validate:"required,isodate,notpast"`
	WorkAuthorization  string `json:"workAuthorization" validate:"required,oneof=citizen permanent-resident visa-holder need-sponsorship"`
}

type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5"`
	Message string `json:"message" validate:"required,min=10"`
}

type ForgotPasswordForm struct {
	Email string `json:"email" validate:"required,email"`
}

type NewsletterForm struct {
	Email string `json:"email" validate:"required,email"`
}
