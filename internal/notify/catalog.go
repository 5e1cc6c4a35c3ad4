package notify

import (
	"fmt"
	"time"
)

// Trigger names a user scenario with a fixed notification.
type Trigger int

const (
	LoginPrompt Trigger = iota + 1
	LoginPromptForMoreBlogs
	SignupSuccess
	SignupRequired
	AccountUnderReview
	ForgotPasswordSuccess
	ContactSuccess
	BookingSuccess
	NewsletterSuccess
	JobApplicationSuccess
	JobSaveSuccess
	LoginToLoadMore
	LoginToAccessPortfolio
	LoginToApplyJob
	LoginToBookConsultation
	LoginToScheduleDemo
	LoginToStartTrial
	LoginToGetStarted
	LoginToViewTemplate
	LoginToUseTemplate
	LoginToSaveJob
)

// Template is the fixed content of a trigger.
type Template struct {
	Name             string
	Kind             Kind
	Title            string
	Message          string
	AutoClose        bool
	AutoCloseDelay   time.Duration
	ShowActionButton bool
	ActionButtonText string
}

const accountRequired = "Account Required"

func loginGate(name, message string) Template {
	return Template{Name: name, Kind: KindInfo, Title: accountRequired, Message: message, AutoClose: true, AutoCloseDelay: 4 * time.Second}
}

var catalog = map[Trigger]Template{
	LoginPrompt:             loginGate("login-prompt", "Please login first to explore the article"),
	LoginPromptForMoreBlogs: loginGate("login-prompt-more-blogs", "Please login first to access all blogs"),
	SignupSuccess: {
		Name: "signup-success", Kind: KindSuccess, Title: "Thank You!",
		Message:   "Thank you for your interest! We will get back soon",
		AutoClose: true, AutoCloseDelay: 5 * time.Second,
	},
	SignupRequired: loginGate("signup-required", "Please sign up first to access your account"),
	AccountUnderReview: {
		Name: "account-under-review", Kind: KindInfo, Title: "Account Under Review",
		Message:          "Your account is currently under review. We will get back soon",
		ShowActionButton: true, ActionButtonText: "OK",
	},
	ForgotPasswordSuccess: {
		Name: "forgot-password-success", Kind: KindInfo, Title: "Request Received",
		Message:   "Thank you, your request has been taken. We'll get back soon",
		AutoClose: true, AutoCloseDelay: 5 * time.Second,
	},
	ContactSuccess: {
		Name: "contact-success", Kind: KindSuccess, Title: "Message Sent!",
		Message:   "Thank you for contacting us! We'll respond within 24 hours",
		AutoClose: true, AutoCloseDelay: 4 * time.Second,
	},
	BookingSuccess: {
		Name: "booking-success", Kind: KindSuccess, Title: "Booking Confirmed!",
		Message:   "Thank you for booking! We'll confirm your session soon",
		AutoClose: true, AutoCloseDelay: 5 * time.Second,
	},
	NewsletterSuccess: {
		Name: "newsletter-success", Kind: KindSuccess, Title: "Thank You!",
		Message:   "Thank you for subscribing! You will receive updates soon",
		AutoClose: true, AutoCloseDelay: 4 * time.Second,
	},
	JobApplicationSuccess: {
		Name: "job-application-success", Kind: KindSuccess, Title: "Application Submitted!",
		Message:   "Thank you for applying to this position. We will get back soon",
		AutoClose: true, AutoCloseDelay: 5 * time.Second,
	},
	JobSaveSuccess: {
		Name: "job-save-success", Kind: KindSuccess, Title: "Job Saved!",
		Message:   "Job has been saved to your profile successfully",
		AutoClose: true, AutoCloseDelay: 3 * time.Second,
	},
	LoginToLoadMore:         loginGate("login-to-load-more", "Login to load more jobs"),
	LoginToAccessPortfolio:  loginGate("login-to-access-portfolio", "Login first to access portfolio"),
	LoginToApplyJob:         loginGate("login-to-apply-job", "Login first to apply job"),
	LoginToBookConsultation: loginGate("login-to-book-consultation", "Login first to book free consultation"),
	LoginToScheduleDemo:     loginGate("login-to-schedule-demo", "Login first to schedule your demo"),
	LoginToStartTrial:       loginGate("login-to-start-trial", "Login first to start demo"),
	LoginToGetStarted:       loginGate("login-to-get-started", "Login first to get started"),
	LoginToViewTemplate:     loginGate("login-to-view-template", "Login first to view template"),
	LoginToUseTemplate:      loginGate("login-to-use-template", "Login first to use the template"),
	LoginToSaveJob:          loginGate("login-to-save-job", "Login first to save job"),
}

var byName = func() map[string]Trigger {
	m := make(map[string]Trigger, len(catalog))
	for t, tpl := range catalog {
		m[tpl.Name] = t
	}
	return m
}()

// Template returns the fixed content for t.
func (t Trigger) Template() (Template, bool) {
	tpl, ok := catalog[t]
	return tpl, ok
}

func (t Trigger) String() string {
	if tpl, ok := catalog[t]; ok {
		return tpl.Name
	}
	return fmt.Sprintf("Trigger(%d)", int(t))
}

// Config builds the notification for t. Unknown triggers yield an empty info.
func (t Trigger) Config() Config {
	tpl := catalog[t]
	return Config{
		Kind:             tpl.Kind,
		Title:            tpl.Title,
		Message:          tpl.Message,
		AutoClose:        tpl.AutoClose,
		AutoCloseDelay:   tpl.AutoCloseDelay,
		ShowActionButton: tpl.ShowActionButton,
		ActionButtonText: tpl.ActionButtonText,
	}
}

// IsLoginGate reports whether t prompts a visitor to log in before
// reaching gated content.
func (t Trigger) IsLoginGate() bool {
	return t != SignupRequired && catalog[t].Title == accountRequired
}

// ParseTrigger looks a trigger up by its kebab-case name.
func ParseTrigger(name string) (Trigger, error) {
	t, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown notification trigger %q", name)
	}
	return t, nil
}

// Triggers lists every catalogued trigger in declaration order.
func Triggers() []Trigger {
	out := make([]Trigger, 0, len(catalog))
	for t := LoginPrompt; t <= LoginToSaveJob; t++ {
		out = append(out, t)
	}
	return out
}

// Success, Info, Warning and Error are the generic, parameterized popups.
// Success and Info close on their own; Warning and Error wait for the user.

func Success(message, title string) Config {
	return Config{Kind: KindSuccess, Title: title, Message: message, AutoClose: true, AutoCloseDelay: 4 * time.Second}
}

func Info(message, title string) Config {
	return Config{Kind: KindInfo, Title: title, Message: message, AutoClose: true, AutoCloseDelay: 4 * time.Second}
}

func Warning(message, title string) Config {
	return Config{Kind: KindWarning, Title: title, Message: message, ShowActionButton: true, ActionButtonText: "OK"}
}

func Error(message, title string) Config {
	return Config{Kind: KindError, Title: title, Message: message, ShowActionButton: true, ActionButtonText: "OK"}
}
