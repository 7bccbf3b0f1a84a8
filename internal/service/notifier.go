package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketplace-ledger/config"
	"marketplace-ledger/internal/core/domain"
	"marketplace-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// notifyRetryIntervals spaces redelivery attempts of one notification.
var notifyRetryIntervals = []time.Duration{
	5 * time.Second,
	30 * time.Second,
	2 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// notificationEnvelope is the JSON body posted to the delivery service.
type notificationEnvelope struct {
	ID          string            `json:"id"`
	Role        domain.Role       `json:"role"`
	RecipientID *uuid.UUID        `json:"recipient_id,omitempty"`
	Template    string            `json:"template"`
	Payload     map[string]string `json:"payload"`
	SentAt      int64             `json:"sent_at"`
}

// HTTPNotifier implements ports.Notifier by posting signed JSON to the email
// and WhatsApp delivery service. With no endpoint configured messages are
// only logged.
type HTTPNotifier struct {
	endpoint       string
	path           string
	secret         string
	sigSvc         ports.SignatureService
	httpClient     HTTPClient
	retryIntervals []time.Duration
	log            zerolog.Logger
}

// NewHTTPNotifier creates a new HTTPNotifier.
func NewHTTPNotifier(cfg config.NotifyConfig, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *HTTPNotifier {
	path := "/"
	if u, err := url.Parse(cfg.Endpoint); err == nil && u.Path != "" {
		path = u.Path
	}
	return &HTTPNotifier{
		endpoint:       cfg.Endpoint,
		path:           path,
		secret:         cfg.Secret,
		sigSvc:         sigSvc,
		httpClient:     httpClient,
		retryIntervals: notifyRetryIntervals,
		log:            log,
	}
}

// Notify hands the message to a background sender and returns immediately.
func (n *HTTPNotifier) Notify(_ context.Context, msg domain.Notification) {
	id := uuid.New().String()
	ev := n.log.Info().Str("notification_id", id).Str("template", msg.Template).Str("role", string(msg.Role))
	if msg.RecipientID != nil {
		ev = ev.Str("recipient_id", msg.RecipientID.String())
	}

	if n.endpoint == "" {
		ev.Msg("notification delivery disabled")
		// Payloads may carry one-time codes; keep them out of info logs.
		n.log.Debug().Str("notification_id", id).Interface("payload", msg.Payload).Msg("notification payload")
		return
	}
	ev.Msg("notification queued")

	body, err := json.Marshal(notificationEnvelope{
		ID:          id,
		Role:        msg.Role,
		RecipientID: msg.RecipientID,
		Template:    msg.Template,
		Payload:     msg.Payload,
		SentAt:      time.Now().Unix(),
	})
	if err != nil {
		n.log.Error().Err(err).Str("notification_id", id).Msg("notify: failed to marshal payload")
		return
	}

	go n.deliverWithRetries(id, body)
}

// deliverWithRetries posts the body until a 2xx answer or the intervals run out.
func (n *HTTPNotifier) deliverWithRetries(id string, body []byte) {
	for attempt := 0; attempt <= len(n.retryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(n.retryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewReader(body))
		if err != nil {
			n.log.Error().Err(err).Str("notification_id", id).Msg("notify: failed to create request")
			return
		}
		ts := time.Now().Unix()
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Timestamp", strconv.FormatInt(ts, 10))
		req.Header.Set("X-Nonce", id)
		req.Header.Set("X-Signature", n.sigSvc.Sign(n.secret, n.sigSvc.BuildCanonicalString(http.MethodPost, n.path, ts, id, body)))

		resp, err := n.httpClient.Do(req)
		if err != nil {
			n.log.Warn().Err(err).Str("notification_id", id).Int("attempt", attempt+1).Msg("notify: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			n.log.Debug().Str("notification_id", id).Int("attempt", attempt+1).Msg("notify: delivered")
			return
		}

		n.log.Warn().Str("notification_id", id).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notify: non-2xx response, retrying")
	}

	n.log.Error().Str("notification_id", id).Msg("notify: all retry attempts exhausted")
}
