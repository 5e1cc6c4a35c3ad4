package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"careerportal/internal/blog"
	"careerportal/internal/notify"
	"careerportal/internal/portal"
	"careerportal/internal/utils"
	"careerportal/internal/validation"
)

// Handler serves the portal over HTTP.
type Handler struct {
	svc         *portal.Service
	views       *portal.Views
	blog        *blog.Catalogue
	logins      *clientLimiter
	enableAdmin bool
	logger      *zap.Logger
}

type Option func(*Handler)

func WithBlog(c *blog.Catalogue) Option { return func(h *Handler) { h.blog = c } }

// WithLoginRate limits login attempts per client address.
func WithLoginRate(perSecond float64, burst int) Option {
	return func(h *Handler) { h.logins = newClientLimiter(perSecond, burst) }
}

// WithAdmin exposes the user administration routes.
func WithAdmin(enabled bool) Option { return func(h *Handler) { h.enableAdmin = enabled } }

func WithLogger(l *zap.Logger) Option { return func(h *Handler) { h.logger = l } }

func NewHandler(svc *portal.Service, views *portal.Views, opts ...Option) *Handler {
	h := &Handler{
		svc:    svc,
		views:  views,
		blog:   blog.Default(),
		logins: newClientLimiter(1, 5),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.Named("api")
	return h
}

// GetTimeHandler returns the current server time in RFC3339 format
func GetTimeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"time": time.Now().Format(time.RFC3339)})
}

type viewResponse struct {
	ID string `json:"id"`
}

func (h *Handler) CreateView(w http.ResponseWriter, r *http.Request) {
	v := h.views.Create()
	writeJSON(w, http.StatusCreated, viewResponse{ID: v.ID})
}

func (h *Handler) CloseView(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Remove(mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetNotification(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newNotificationResponse(v.Notifications.State()))
}

func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	v.Notifications.Hide()
	writeJSON(w, http.StatusOK, newNotificationResponse(v.Notifications.State()))
}

func (h *Handler) NotificationAction(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	if !v.Notifications.Action() {
		h.writeError(w, utils.New(http.StatusConflict, "no notification is open"))
		return
	}
	writeJSON(w, http.StatusOK, newNotificationResponse(v.Notifications.State()))
}

func (h *Handler) Gate(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	t, err := notify.ParseTrigger(mux.Vars(r)["trigger"])
	if err != nil {
		h.writeError(w, utils.New(http.StatusNotFound, err.Error()))
		return
	}
	if err := h.svc.Gate(v, t); err != nil {
		h.writeError(w, utils.New(http.StatusBadRequest, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, newNotificationResponse(v.Notifications.State()))
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.Signup)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.Login)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.ForgotPassword)
}

func (h *Handler) Newsletter(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.Newsletter)
}

func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.Contact)
}

func (h *Handler) Booking(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.Booking)
}

func (h *Handler) ApplyJob(w http.ResponseWriter, r *http.Request) {
	submit(h, w, r, h.svc.ApplyJob)
}

func (h *Handler) SaveJob(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	t := h.svc.SaveJob(v, mux.Vars(r)["job"])
	writeJSON(w, http.StatusOK, submitResponse{Result: t.String(), Notification: newNotificationResponse(v.Notifications.State())})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, map[string]any{
		"featured": h.blog.Featured(),
		"posts":    h.blog.Filter(q.Get("q"), q.Get("category")),
	})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["post"])
	p, ok := h.blog.Find(id)
	if !ok {
		h.writeError(w, utils.New(http.StatusNotFound, "post not found"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.blog.Categories())
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Users(r.Context()))
}

func (h *Handler) ClearUsers(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearUsers(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type submitResponse struct {
	Result       string               `json:"result"`
	Notification notificationResponse `json:"notification"`
}

// submit decodes the form, runs the flow against the request's view and
// writes the resulting notification.
func submit[F any](h *Handler, w http.ResponseWriter, r *http.Request, flow func(ctx context.Context, v *portal.View, form F) (notify.Trigger, error)) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	var form F
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.writeError(w, utils.New(http.StatusBadRequest, "invalid request body"))
		return
	}
	t, err := flow(r.Context(), v, form)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Result: t.String(), Notification: newNotificationResponse(v.Notifications.State())})
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) (*portal.View, bool) {
	v, err := h.views.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	return v, true
}

type errorResponse struct {
	Error  string              `json:"error,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var fe validation.FieldErrors
	switch {
	case errors.As(err, &fe):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Errors: fe})
	case errors.Is(err, portal.ErrViewNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "submission cancelled"})
	case errors.As(err, new(*utils.CustomError)):
		writeJSON(w, utils.StatusOf(err), errorResponse{Error: utils.MessageOf(err)})
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
