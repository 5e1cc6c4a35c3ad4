// Package notify holds the single popup a view shows after a user action.
package notify

import "time"

// Kind selects the popup styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

const (
	DefaultAutoCloseDelay   = 4 * time.Second
	DefaultActionButtonText = "OK"
)

// Config describes one notification.
type Config struct {
	Kind             Kind          `json:"kind"`
	Title            string        `json:"title"`
	Message          string        `json:"message"`
	AutoClose        bool          `json:"auto_close"`
	AutoCloseDelay   time.Duration `json:"auto_close_delay"`
	ShowActionButton bool          `json:"show_action_button"`
	ActionButtonText string        `json:"action_button_text,omitempty"`
	// OnAction runs before the popup closes when the action button is used.
	OnAction func() `json:"-"`
}

// withDefaults fills the presentation defaults the popup falls back to.
func (c Config) withDefaults() Config {
	if c.Kind == "" {
		c.Kind = KindInfo
	}
	if c.Title == "" {
		c.Title = defaultTitle(c.Kind)
	}
	if c.AutoClose && c.AutoCloseDelay <= 0 {
		c.AutoCloseDelay = DefaultAutoCloseDelay
	}
	if c.ShowActionButton && c.ActionButtonText == "" {
		c.ActionButtonText = DefaultActionButtonText
	}
	return c
}

func defaultTitle(k Kind) string {
	switch k {
	case KindSuccess:
		return "Success!"
	case KindWarning:
		return "Attention"
	case KindError:
		return "Error"
	default:
		return "Information"
	}
}

// State is a snapshot of the controller.
type State struct {
	IsOpen bool    `json:"is_open"`
	Config *Config `json:"config"`
}
