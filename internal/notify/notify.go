package notify

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nicholas-fedor/shoutrrr"
)

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// String returns the display label for a level.
func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single user-visible event.
type Notification struct {
	Level   Level
	Title   string
	Message string
	Time    time.Time
}

// Sender forwards a notification message to an external service.
// Abstracted so the center can be tested without hitting real services.
type Sender interface {
	Send(url, message string) error
}

// ShoutrrrSender dispatches via the Shoutrrr library.
type ShoutrrrSender struct{}

func (ShoutrrrSender) Send(url, message string) error {
	return shoutrrr.Send(url, message)
}

// Recorder persists dispatched notifications (satisfied by storage/db).
type Recorder interface {
	RecordNotification(level, title, message string) error
}

// Center is the launcher-wide notification queue. Publishing appends to the
// in-memory history, invokes subscribers in order, records to the recorder,
// and optionally forwards through a Sender. Single-writer: all launcher
// components publish through the one shared center.
type Center struct {
	mu         sync.Mutex
	items      []Notification
	subs       []func(Notification)
	sender     Sender
	forwardURL string
	recorder   Recorder
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{}
}

// SetForwarding enables forwarding of every notification to the given
// Shoutrrr-style URL. A nil sender uses the real Shoutrrr dispatcher.
func (c *Center) SetForwarding(sender Sender, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if sender == nil {
		sender = ShoutrrrSender{}
	}
	c.sender = sender
	c.forwardURL = url
}

// SetRecorder sets the persistent history sink.
func (c *Center) SetRecorder(r Recorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorder = r
}

// Subscribe registers a callback invoked for every published notification,
// in publish order.
func (c *Center) Subscribe(fn func(Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// Info publishes an informational notification.
func (c *Center) Info(title, format string, args ...any) {
	c.publish(Notification{Level: LevelInfo, Title: title, Message: fmt.Sprintf(format, args...)})
}

// Success publishes a success notification.
func (c *Center) Success(title, format string, args ...any) {
	c.publish(Notification{Level: LevelSuccess, Title: title, Message: fmt.Sprintf(format, args...)})
}

// Error publishes an error notification.
func (c *Center) Error(title, format string, args ...any) {
	c.publish(Notification{Level: LevelError, Title: title, Message: fmt.Sprintf(format, args...)})
}

// History returns a copy of all published notifications, oldest first.
func (c *Center) History() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Latest returns the most recent notification, if any.
func (c *Center) Latest() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return Notification{}, false
	}
	return c.items[len(c.items)-1], true
}

func (c *Center) publish(n Notification) {
	n.Time = time.Now()

	c.mu.Lock()
	c.items = append(c.items, n)
	subs := make([]func(Notification), len(c.subs))
	copy(subs, c.subs)
	sender, url := c.sender, c.forwardURL
	recorder := c.recorder
	c.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}

	if recorder != nil {
		if err := recorder.RecordNotification(n.Level.String(), n.Title, n.Message); err != nil {
			log.Printf("notify: record history: %v", err)
		}
	}

	if sender != nil && url != "" {
		msg := fmt.Sprintf("[%s] %s: %s", n.Level, n.Title, n.Message)
		if err := sender.Send(url, msg); err != nil {
			log.Printf("notify: forward failed: %v", err)
		}
	}
}
