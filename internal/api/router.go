package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/time", GetTimeHandler).Methods("GET")

	r.HandleFunc("/views", h.CreateView).Methods("POST")
	r.HandleFunc("/views/{id}", h.CloseView).Methods("DELETE")
	v := r.PathPrefix("/views/{id}").Subrouter()
	v.HandleFunc("/notification", h.GetNotification).Methods("GET")
	v.HandleFunc("/notification/dismiss", h.DismissNotification).Methods("POST")
	v.HandleFunc("/notification/action", h.NotificationAction).Methods("POST")
	v.HandleFunc("/gate/{trigger}", h.Gate).Methods("POST")
	v.HandleFunc("/signup", h.Signup).Methods("POST")
	v.Handle("/login", h.limitLogins(http.HandlerFunc(h.Login))).Methods("POST")
	v.HandleFunc("/forgot-password", h.ForgotPassword).Methods("POST")
	v.HandleFunc("/newsletter", h.Newsletter).Methods("POST")
	v.HandleFunc("/contact", h.Contact).Methods("POST")
	v.HandleFunc("/booking", h.Booking).Methods("POST")
	v.HandleFunc("/jobs/apply", h.ApplyJob).Methods("POST")
	v.HandleFunc("/jobs/{job}/save", h.SaveJob).Methods("POST")

	r.HandleFunc("/blog/posts", h.ListPosts).Methods("GET")
	r.HandleFunc("/blog/posts/{post:[0-9]+}", h.GetPost).Methods("GET")
	r.HandleFunc("/blog/categories", h.ListCategories).Methods("GET")

	if h.enableAdmin {
		r.HandleFunc("/admin/users", h.ListUsers).Methods("GET")
		r.HandleFunc("/admin/users", h.ClearUsers).Methods("DELETE")
	}
	return r
}
