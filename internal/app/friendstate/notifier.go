package friendstate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/sirupsen/logrus"
)

// Notifier delivers an event to the user, e.g. the "new friend" popup.
type Notifier interface {
	Notify(n model.Notification) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n model.Notification) error

// Notify ...
func (f NotifierFunc) Notify(n model.Notification) error {
	return f(n)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger logrus.FieldLogger
}

// Notify ...
func (l LogNotifier) Notify(n model.Notification) error {
	l.Logger.WithFields(logrus.Fields{
		"id":       n.ID,
		"event":    n.Type,
		"userid":   n.UserID,
		"friendid": n.FriendID,
	}).Info("Event popup")

	return nil
}

// HTTPNotifier posts notifications as JSON to a notification service at
// BaseURL + /api/notification/user/{friendid}.
type HTTPNotifier struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPNotifier ...
func NewHTTPNotifier(baseURL string) *HTTPNotifier {
	return &HTTPNotifier{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify ...
func (h *HTTPNotifier) Notify(n model.Notification) error {
	b := &bytes.Buffer{}
	if err := json.NewEncoder(b).Encode(&n); err != nil {
		return err
	}

	resp, err := h.Client.Post(h.BaseURL+"/api/notification/user/"+n.FriendID.String(), "application/json", b)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification service responded %s", resp.Status)
	}

	return nil
}
