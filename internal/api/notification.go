package api

import "careerportal/internal/notify"

type notificationResponse struct {
	IsOpen           bool        `json:"isOpen"`
	Kind             notify.Kind `json:"type,omitempty"`
	Title            string      `json:"title,omitempty"`
	Message          string      `json:"message,omitempty"`
	AutoClose        bool        `json:"autoClose,omitempty"`
	AutoCloseDelayMs int64       `json:"autoCloseDelay,omitempty"`
	ShowActionButton bool        `json:"showActionButton,omitempty"`
	ActionButtonText string      `json:"actionButtonText,omitempty"`
}

func newNotificationResponse(st notify.State) notificationResponse {
	if !st.IsOpen || st.Config == nil {
		return notificationResponse{}
	}
	c := st.Config
	return notificationResponse{
		IsOpen:           true,
		Kind:             c.Kind,
		Title:            c.Title,
		Message:          c.Message,
		AutoClose:        c.AutoClose,
		AutoCloseDelayMs: c.AutoCloseDelay.Milliseconds(),
		ShowActionButton: c.ShowActionButton,
		ActionButtonText: c.ActionButtonText,
	}
}
