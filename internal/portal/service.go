// Package portal runs the page-level form flows: validate, wait out the
// submit delay, touch the credential store, and report through the view's
// notification controller.
package portal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"careerportal/internal/credentials"
	"careerportal/internal/models"
	"careerportal/internal/notify"
	"careerportal/internal/validation"
)

var (
	ErrSubmitFailed = errors.New("submission failed")
	ErrNotLoginGate = errors.New("trigger is not a login prompt")
)

const DefaultSubmitDelay = time.Second

type Service struct {
	store     *credentials.Store
	validator *validation.Validator
	delay     time.Duration
	logger    *zap.Logger
}

type Option func(*Service)

// WithSubmitDelay sets the simulated round trip before a valid form completes.
func WithSubmitDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithValidator(v *validation.Validator) Option {
	return func(s *Service) { s.validator = v }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store *credentials.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		delay:  DefaultSubmitDelay,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validator == nil {
		s.validator = validation.New()
	}
	s.logger = s.logger.Named("portal")
	return s
}

// Signup registers the visitor. An already registered email is reported
// the same way as a fresh signup.
func (s *Service) Signup(ctx context.Context, v *View, form validation.SignupForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	res := s.store.Register(ctx, form.Email, form.Password, form.FirstName, form.LastName)
	s.logger.Info("signup", zap.String("view", v.ID), zap.Stringer("result", res))
	if res == credentials.Failed {
		v.Notifications.Show(notify.Error("We could not complete your signup. Please try again", ""))
		return 0, ErrSubmitFailed
	}
	return s.show(v, notify.SignupSuccess), nil
}

// Login checks the credentials. Accounts are never activated, so a match
// lands on the review notice and anything else asks the visitor to sign up.
func (s *Service) Login(ctx context.Context, v *View, form validation.LoginForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	if s.store.ValidateCredentials(ctx, form.Email, form.Password) {
		return s.show(v, notify.AccountUnderReview), nil
	}
	s.logger.Info("login rejected", zap.String("view", v.ID))
	return s.show(v, notify.SignupRequired), nil
}

func (s *Service) ForgotPassword(ctx context.Context, v *View, form validation.ForgotPasswordForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	return s.show(v, notify.ForgotPasswordSuccess), nil
}

func (s *Service) Newsletter(ctx context.Context, v *View, form validation.NewsletterForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	return s.show(v, notify.NewsletterSuccess), nil
}

func (s *Service) Contact(ctx context.Context, v *View, form validation.ContactForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	return s.show(v, notify.ContactSuccess), nil
}

func (s *Service) Booking(ctx context.Context, v *View, form validation.BookingForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	return s.show(v, notify.BookingSuccess), nil
}

func (s *Service) ApplyJob(ctx context.Context, v *View, form validation.JobApplicationForm) (notify.Trigger, error) {
	if err := s.submit(ctx, v, form); err != nil {
		return 0, err
	}
	return s.show(v, notify.JobApplicationSuccess), nil
}

// SaveJob bookmarks a listing. There is no form and no round trip.
func (s *Service) SaveJob(v *View, jobID string) notify.Trigger {
	s.logger.Debug("job saved", zap.String("view", v.ID), zap.String("job", jobID))
	return s.show(v, notify.JobSaveSuccess)
}

// Gate shows the login prompt for gated content.
func (s *Service) Gate(v *View, t notify.Trigger) error {
	if !t.IsLoginGate() {
		return ErrNotLoginGate
	}
	s.show(v, t)
	return nil
}

// Users lists registered accounts.
func (s *Service) Users(ctx context.Context) []models.Profile {
	users := s.store.Users(ctx)
	out := make([]models.Profile, 0, len(users))
	for _, u := range users {
		out = append(out, u.Profile())
	}
	return out
}

// ClearUsers drops every registered account.
func (s *Service) ClearUsers(ctx context.Context) {
	s.store.ClearAll(ctx)
	s.logger.Warn("all registered users cleared")
}

// submit validates form and then waits out the submit delay. Validation
// errors come back as validation.FieldErrors. The wait ends early if ctx is
// cancelled or the view is closed.
func (s *Service) submit(ctx context.Context, v *View, form any) error {
	if errs := s.validator.Validate(form); errs != nil {
		return errs
	}
	if s.delay <= 0 {
		return viewErr(ctx, v)
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return viewErr(ctx, v)
	case <-ctx.Done():
		return ctx.Err()
	case <-v.Done():
		return context.Canceled
	}
}

func viewErr(ctx context.Context, v *View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-v.Done():
		return context.Canceled
	default:
		return nil
	}
}

func (s *Service) show(v *View, t notify.Trigger) notify.Trigger {
	v.Notifications.ShowTrigger(t)
	return t
}
