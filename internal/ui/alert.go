package ui

import (
	"html/template"
	"sync"
	"time"
)

// DefaultDismissDelay is how long an alert waits after hiding before its
// OnDismiss callback runs.
const DefaultDismissDelay = 300 * time.Millisecond

// AlertType selects the alert color scheme and icon.
type AlertType string

const (
	AlertInfo      AlertType = "info"
	AlertSuccess   AlertType = "success"
	AlertWarning   AlertType = "warning"
	AlertError     AlertType = "error"
	AlertEmergency AlertType = "emergency"
)

func (t AlertType) normalize() AlertType {
	switch t {
	case AlertInfo, AlertSuccess, AlertWarning, AlertError, AlertEmergency:
		return t
	}
	return AlertInfo
}

// AlertState is the visibility of an alert.
type AlertState int

const (
	AlertVisible AlertState = iota
	AlertDismissed
)

func (s AlertState) String() string {
	if s == AlertDismissed {
		return "dismissed"
	}
	return "visible"
}

// Alert is a message banner that can be dismissed once. Dismiss hides it
// immediately; OnDismiss runs exactly once, Delay later, on another goroutine.
type Alert struct {
	Key         string
	Type        AlertType
	Title       string
	Message     string
	Dismissible bool
	Delay       time.Duration
	Action      template.HTML // optional control shown beside the message
	OnDismiss   func()

	mu    sync.Mutex
	state AlertState
	after func(time.Duration, func())
}

// NewAlert returns a visible alert. A non-positive delay selects
// DefaultDismissDelay.
func NewAlert(key string, typ AlertType, title, message string, dismissible bool, delay time.Duration) *Alert {
	return &Alert{
		Key:         key,
		Type:        typ,
		Title:       title,
		Message:     message,
		Dismissible: dismissible,
		Delay:       delay,
	}
}

// State reports whether the alert is still visible.
func (a *Alert) State() AlertState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Visible is shorthand for State() == AlertVisible.
func (a *Alert) Visible() bool {
	return a.State() == AlertVisible
}

// Dismiss moves the alert to the dismissed state and schedules OnDismiss.
// It reports whether this call performed the transition; later calls are
// no-ops and return false.
func (a *Alert) Dismiss() bool {
	a.mu.Lock()
	if a.state == AlertDismissed {
		a.mu.Unlock()
		return false
	}
	a.state = AlertDismissed
	cb := a.OnDismiss
	after := a.after
	a.mu.Unlock()

	if cb == nil {
		return true
	}
	if after == nil {
		after = func(d time.Duration, f func()) { time.AfterFunc(d, f) }
	}
	after(a.delay(), cb)
	return true
}

func (a *Alert) delay() time.Duration {
	if a.Delay <= 0 {
		return DefaultDismissDelay
	}
	return a.Delay
}

// Classes returns the CSS class list for the alert.
func (a *Alert) Classes() string {
	return classes("alert", "alert-"+string(a.Type.normalize()))
}

// Icon returns the glyph shown beside the message.
func (a *Alert) Icon() string {
	switch a.Type.normalize() {
	case AlertSuccess:
		return "✓"
	case AlertWarning, AlertEmergency:
		return "⚠"
	case AlertError:
		return "✕"
	}
	return "ℹ"
}

// DelayMillis is the dismiss delay exposed to the client script.
func (a *Alert) DelayMillis() int64 {
	return a.delay().Milliseconds()
}

// Render returns the alert markup, or nothing once dismissed.
func (a *Alert) Render() template.HTML {
	if !a.Visible() {
		return ""
	}
	return execute(alertTmpl, a)
}

var alertTmpl = template.Must(template.New("alert").Parse(`<div class="{{.Classes}}" role="alert"
  {{- if .Key}} data-alert-key="{{.Key}}"{{end}} data-dismiss-delay="{{.DelayMillis}}">
  <span class="alert-icon" aria-hidden="true">{{.Icon}}</span>
  <div class="alert-body">
    {{- if .Title}}<h3 class="alert-title">{{.Title}}</h3>{{end}}
    <p class="alert-message">{{.Message}}</p>
  </div>
  {{- if .Action}}
  <div class="alert-action">{{.Action}}</div>
  {{- end}}
  {{- if .Dismissible}}
  <button type="button" class="alert-dismiss" aria-label="Dismiss alert">×</button>
  {{- end}}
</div>`))
