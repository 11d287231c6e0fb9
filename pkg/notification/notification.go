// Package notification provides a multi-channel notification system.
//
// Define a Notification:
//
//	type OrderPlacedNotification struct { Order models.Order }
//	func (n *OrderPlacedNotification) Via() []string { return []string{"mail"} }
//	func (n *OrderPlacedNotification) ToMail() notification.MailData {
//	    return notification.MailData{
//	        Subject: "New order received",
//	        Body:    "<h1>Order #" + strconv.Itoa(int(n.Order.ID)) + "</h1>",
//	    }
//	}
//
// Send:
//
//	notification.Send(config.ShopOwnerEmail(), &OrderPlacedNotification{Order: order})
package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/logger"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/mail"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/workerpool"
)

// ------------------- Channel data structs -------------------

// MailData carries the data needed to send an email notification.
type MailData struct {
	To      string // overrides the notifiable address if set
	Subject string
	Body    string // HTML
	Text    string // plain-text fallback
}

// WebhookData carries an arbitrary JSON payload to POST to a URL.
type WebhookData struct {
	URL     string
	Payload interface{}
	Headers map[string]string
}

// LogData carries a structured log entry. The log channel is the always-on
// fallback for environments without SMTP configured.
type LogData struct {
	Message string
	Fields  []interface{} // alternating key/value pairs for slog
}

// ------------------- Notification interface -------------------

// Notification is the interface every notification must satisfy.
type Notification interface {
	// Via returns the list of channel names: "mail", "webhook", "log".
	Via() []string
}

// Mailable can be implemented to support the mail channel.
type Mailable interface {
	ToMail() MailData
}

// Webhookable can be implemented to support the webhook channel.
type Webhookable interface {
	ToWebhook() WebhookData
}

// Loggable can be implemented to support the log channel.
type Loggable interface {
	ToLog() LogData
}

// ------------------- Dispatch pool -------------------

// pool bounds concurrent async notification sends.
var pool = workerpool.New(8)

// ------------------- Send -------------------

// Send dispatches the notification through all channels returned by Via().
// address is typically an email address used for the mail channel.
func Send(address string, n Notification) []error {
	var errs []error
	for _, channel := range n.Via() {
		if err := dispatch(address, channel, n); err != nil {
			logger.Error("notification: channel failed",
				"channel", channel, "error", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// SendAsync dispatches the notification on the shared worker pool.
// Falls back to a plain goroutine if the pool is saturated.
func SendAsync(address string, n Notification) {
	task := func() {
		if errs := Send(address, n); len(errs) > 0 {
			for _, e := range errs {
				logger.Error("notification: async error", "error", e)
			}
		}
	}
	if err := pool.Submit(task); err != nil {
		go task()
	}
}

func dispatch(address, channel string, n Notification) error {
	switch channel {
	case "mail":
		m, ok := n.(Mailable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Mailable", n)
		}
		return sendMail(address, m.ToMail())

	case "webhook":
		wh, ok := n.(Webhookable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Webhookable", n)
		}
		return sendWebhook(wh.ToWebhook())

	case "log":
		l, ok := n.(Loggable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Loggable", n)
		}
		d := l.ToLog()
		logger.Info(d.Message, d.Fields...)
		return nil

	default:
		return fmt.Errorf("notification: unknown channel %q", channel)
	}
}

// ------------------- Mail channel -------------------

func sendMail(address string, d MailData) error {
	to := d.To
	if to == "" {
		to = address
	}

	body := d.Body
	if body == "" {
		body = d.Text
	}

	return mail.To(to).Subject(d.Subject).Body(body).Send()
}

// ------------------- Webhook channel -------------------

func sendWebhook(d WebhookData) error {
	if d.URL == "" {
		return fmt.Errorf("notification: webhook URL is empty")
	}

	raw, err := json.Marshal(d.Payload)
	if err != nil {
		return fmt.Errorf("notification: webhook marshal: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, d.URL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("notification: webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range d.Headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notification: webhook send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification: webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}
