// Package notify is the user-visible notification sink. Handlers raise a
// Notice and forget about it; the page layout renders collected notices
// as toasts.
package notify

import (
	"net/http"
	"sync"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Variant selects how a notice is styled.
type Variant string

const (
	Default     Variant = "default"
	Destructive Variant = "destructive"
)

// Notice is one toast.
type Notice struct {
	Variant     Variant `json:"variant"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// Error builds a destructive notice.
func Error(description string) Notice {
	return Notice{Variant: Destructive, Title: "Error", Description: description}
}

// Info builds a default notice.
func Info(title, description string) Notice {
	return Notice{Variant: Default, Title: title, Description: description}
}

// Sink receives notices. Notify never fails from the caller's point of view.
type Sink interface {
	Notify(n Notice)
}

// Collector gathers notices raised while handling one request so they can
// be rendered in the same response.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Sink.
func (c *Collector) Notify(n Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
}

// Notices returns a copy of what has been collected.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

const flashKey = "_notices"

// SessionFlash stores notices in the session so they survive a redirect.
type SessionFlash struct {
	store sessions.Store
	name  string
	w     http.ResponseWriter
	r     *http.Request
	log   *zap.Logger
}

// NewSessionFlash returns a Sink writing flashes into the named session.
func NewSessionFlash(store sessions.Store, name string, w http.ResponseWriter, r *http.Request, log *zap.Logger) *SessionFlash {
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionFlash{store: store, name: name, w: w, r: r, log: log}
}

// Notify implements Sink. Session errors are logged and dropped.
func (f *SessionFlash) Notify(n Notice) {
	sess, err := f.store.Get(f.r, f.name)
	if err != nil {
		f.log.Warn("notify: session unavailable", zap.Error(err))
		return
	}
	sess.AddFlash(n, flashKey)
	if err := sess.Save(f.r, f.w); err != nil {
		f.log.Warn("notify: session save failed", zap.Error(err))
	}
}

// PopFlashes removes and returns the notices stored by SessionFlash.
func PopFlashes(store sessions.Store, name string, w http.ResponseWriter, r *http.Request) []Notice {
	sess, err := store.Get(r, name)
	if err != nil {
		return nil
	}
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	out := make([]Notice, 0, len(raw))
	for _, v := range raw {
		if n, ok := v.(Notice); ok {
			out = append(out, n)
		}
	}
	return out
}
