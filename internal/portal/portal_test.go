package portal

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"careerportal/internal/credentials"
	"careerportal/internal/crypto"
	"careerportal/internal/models"
	"careerportal/internal/notify"
	"careerportal/internal/validation"
)

func TestMain(m *testing.M) {
	crypto.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// heldScheduler never fires; it only records what was scheduled.
type heldScheduler struct {
	mu    sync.Mutex
	count int
}

type heldTimer struct{}

func (heldTimer) Stop() bool { return true }

func (h *heldScheduler) AfterFunc(time.Duration, func()) notify.Timer {
	h.mu.Lock()
	h.count++
	h.mu.Unlock()
	return heldTimer{}
}

type fixture struct {
	svc   *Service
	store *credentials.Store
	views *Views
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	repo, err := credentials.OpenRepository(credentials.BackendJSON, t.TempDir(), nil)
	require.NoError(t, err)
	store := credentials.NewStore(repo)
	t.Cleanup(func() { store.Close() })

	opts = append([]Option{
		WithSubmitDelay(0),
		WithValidator(validation.New(validation.WithClock(func() time.Time { return fixedNow }))),
	}, opts...)
	views := NewViews(&heldScheduler{}, nil)
	t.Cleanup(views.CloseAll)
	return fixture{svc: NewService(store, opts...), store: store, views: views}
}

func signupForm(email, password string) validation.SignupForm {
	return validation.SignupForm{
		FirstName:       "Ada",
		LastName:        "Byron",
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
		Terms:           true,
	}
}

func openTitle(t *testing.T, v *View) string {
	t.Helper()
	st := v.Notifications.State()
	require.True(t, st.IsOpen)
	return st.Config.Title
}

func TestSignupThenLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.views.Create()

	tr, err := f.svc.Signup(ctx, v, signupForm("a@b.com", "Abcdef1!"))
	require.NoError(t, err)
	assert.Equal(t, notify.SignupSuccess, tr)
	assert.Equal(t, "Thank You!", openTitle(t, v))
	assert.True(t, f.store.IsEmailRegistered(ctx, "a@b.com"))

	tests := []struct {
		name     string
		email    string
		password string
		want     notify.Trigger
	}{
		{"correct credentials", "a@b.com", "Abcdef1!", notify.AccountUnderReview},
		{"wrong password", "a@b.com", "wrongpass", notify.SignupRequired},
		{"unknown email", "x@y.com", "Abcdef1!", notify.SignupRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := f.svc.Login(ctx, v, validation.LoginForm{Email: tt.email, Password: tt.password})
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr)
			tpl, _ := tt.want.Template()
			assert.Equal(t, tpl.Title, openTitle(t, v))
		})
	}
}

func TestSignupDuplicateStillSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.views.Create()

	_, err := f.svc.Signup(ctx, v, signupForm("a@b.com", "Abcdef1!"))
	require.NoError(t, err)
	tr, err := f.svc.Signup(ctx, v, signupForm("a@b.com", "Zyxwvu9!"))
	require.NoError(t, err)
	assert.Equal(t, notify.SignupSuccess, tr)

	assert.Len(t, f.svc.Users(ctx), 1)
	assert.True(t, f.store.ValidateCredentials(ctx, "a@b.com", "Abcdef1!"), "first registration wins")
}

func TestSignupLongPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.views.Create()
	password := "Abcdef1" + strings.Repeat("x", 70)

	tr, err := f.svc.Signup(ctx, v, signupForm("long@b.com", password))
	require.NoError(t, err)
	assert.Equal(t, notify.SignupSuccess, tr)

	tr, err = f.svc.Login(ctx, v, validation.LoginForm{Email: "long@b.com", Password: password})
	require.NoError(t, err)
	assert.Equal(t, notify.AccountUnderReview, tr)
}

func TestValidationFailureTouchesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.views.Create()

	form := signupForm("not-an-email", "short")
	form.ConfirmPassword = "other"
	_, err := f.svc.Signup(ctx, v, form)

	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "password")
	assert.Contains(t, fe, "confirmPassword")
	assert.False(t, v.Notifications.State().IsOpen)
	assert.Empty(t, f.svc.Users(ctx))
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]models.RegisteredUser, error) {
	return nil, errors.New("disk full")
}
func (failingRepo) Insert(context.Context, models.RegisteredUser) (bool, error) {
	return false, errors.New("disk full")
}
func (failingRepo) Find(context.Context, string) (*models.RegisteredUser, error) {
	return nil, errors.New("disk full")
}
func (failingRepo) Clear(context.Context) error { return errors.New("disk full") }
func (failingRepo) Close() error                { return nil }

func TestSignupStorageFailure(t *testing.T) {
	views := NewViews(&heldScheduler{}, nil)
	defer views.CloseAll()
	svc := NewService(credentials.NewStore(failingRepo{}), WithSubmitDelay(0))
	v := views.Create()

	_, err := svc.Signup(context.Background(), v, signupForm("a@b.com", "Abcdef1!"))
	assert.ErrorIs(t, err, ErrSubmitFailed)
	st := v.Notifications.State()
	require.True(t, st.IsOpen)
	assert.Equal(t, notify.KindError, st.Config.Kind)
}

func TestSubmitDelayCancellation(t *testing.T) {
	t.Run("context", func(t *testing.T) {
		f := newFixture(t, WithSubmitDelay(time.Hour))
		v := f.views.Create()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.svc.Signup(ctx, v, signupForm("a@b.com", "Abcdef1!"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, f.store.IsEmailRegistered(context.Background(), "a@b.com"))
		assert.False(t, v.Notifications.State().IsOpen)
	})

	t.Run("view closed mid-flight", func(t *testing.T) {
		f := newFixture(t, WithSubmitDelay(time.Hour))
		v := f.views.Create()

		done := make(chan error, 1)
		go func() {
			_, err := f.svc.Signup(context.Background(), v, signupForm("a@b.com", "Abcdef1!"))
			done <- err
		}()
		require.NoError(t, f.views.Remove(v.ID))

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Fatal("submission did not abort")
		}
		assert.False(t, f.store.IsEmailRegistered(context.Background(), "a@b.com"))
	})
}

func TestSubmitDelayElapses(t *testing.T) {
	f := newFixture(t, WithSubmitDelay(10*time.Millisecond))
	v := f.views.Create()

	start := time.Now()
	tr, err := f.svc.Newsletter(context.Background(), v, validation.NewsletterForm{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, notify.NewsletterSuccess, tr)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestOtherForms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.views.Create()

	tr, err := f.svc.ForgotPassword(ctx, v, validation.ForgotPasswordForm{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, notify.ForgotPasswordSuccess, tr)

	tr, err = f.svc.Contact(ctx, v, validation.ContactForm{
		Name: "Ada", Email: "a@b.com", Subject: "Resume help", Message: "Could you review my resume?",
	})
	require.NoError(t, err)
	assert.Equal(t, notify.ContactSuccess, tr)

	tr, err = f.svc.Booking(ctx, v, validation.BookingForm{
		FirstName: "Ada", LastName: "Byron", Email: "a@b.com", Phone: "+15551234567",
		PreferredDate: "2026-10-20", PreferredTime: "10:00", SessionType: "resume-review",
	})
	require.NoError(t, err)
	assert.Equal(t, notify.BookingSuccess, tr)

	_, err = f.svc.Booking(ctx, v, validation.BookingForm{
		FirstName: "Ada", LastName: "Byron", Email: "a@b.com", Phone: "+15551234567",
		PreferredDate: "2026-10-18", PreferredTime: "10:00", SessionType: "resume-review",
	})
	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe, "preferredDate")

	tr, err = f.svc.ApplyJob(ctx, v, validation.JobApplicationForm{
		FirstName: "Ada", LastName: "Byron", Email: "a@b.com", Phone: "+15551234567",
		Resume:             "ada-byron.pdf",
		CoverLetter:        "I have spent ten years building analytical engines and would love to join.",
		AvailableStartDate: "2026-11-01",
		WorkAuthorization:  "citizen",
	})
	require.NoError(t, err)
	assert.Equal(t, notify.JobApplicationSuccess, tr)

	assert.Equal(t, notify.JobSaveSuccess, f.svc.SaveJob(v, "42"))
	assert.Equal(t, "Job Saved!", openTitle(t, v))
}

func TestGate(t *testing.T) {
	f := newFixture(t)
	v := f.views.Create()

	require.NoError(t, f.svc.Gate(v, notify.LoginToApplyJob))
	assert.Equal(t, "Login first to apply job", v.Notifications.State().Config.Message)

	assert.ErrorIs(t, f.svc.Gate(v, notify.SignupSuccess), ErrNotLoginGate)
}

func TestClearUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.views.Create()
	_, err := f.svc.Signup(ctx, v, signupForm("a@b.com", "Abcdef1!"))
	require.NoError(t, err)

	f.svc.ClearUsers(ctx)
	assert.Empty(t, f.svc.Users(ctx))
}

func TestViews(t *testing.T) {
	sched := &heldScheduler{}
	vs := NewViews(sched, nil)
	now := fixedNow
	vs.now = func() time.Time { return now }

	a := vs.Create()
	b := vs.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, vs.Len())

	got, err := vs.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = vs.Get("missing")
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.ErrorIs(t, vs.Remove("missing"), ErrViewNotFound)

	now = now.Add(20 * time.Minute)
	_, err = vs.Get(b.ID)
	require.NoError(t, err)
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, vs.Sweep(30*time.Minute))
	select {
	case <-a.Done():
	default:
		t.Fatal("swept view not closed")
	}
	_, err = vs.Get(b.ID)
	assert.NoError(t, err)

	b.Notifications.ShowTrigger(notify.LoginPrompt)
	require.NoError(t, vs.Remove(b.ID))
	b.Notifications.ShowTrigger(notify.LoginPrompt)
	assert.Equal(t, 1, sched.count, "closed controller schedules nothing")
	assert.Zero(t, vs.Len())
}
