package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"caselight-agent/src/contracts"
	"caselight-agent/src/logger"
)

// Publisher builds and publishes session events. A nil *Publisher is valid
// and publishes nothing, so callers never need to branch on whether
// journaling is enabled.
type Publisher struct {
	broker    Broker
	log       logger.Logger
	sessionID string
}

// NewPublisher creates a publisher for the given session.
func NewPublisher(broker Broker, log logger.Logger, sessionID string) *Publisher {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Publisher{broker: broker, log: log, sessionID: sessionID}
}

// SessionID returns the session this publisher writes under.
func (p *Publisher) SessionID() string {
	if p == nil {
		return ""
	}
	return p.sessionID
}

// Record publishes one event. Failures are logged and swallowed: the journal
// must never block or fail a user action.
func (p *Publisher) Record(ctx context.Context, kind, candidateID, status, detail string) {
	if p == nil || p.broker == nil {
		return
	}

	event := contracts.SessionEvent{
		ID:          uuid.NewString(),
		SessionID:   p.sessionID,
		Kind:        kind,
		CandidateID: candidateID,
		Status:      status,
		Detail:      detail,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("failed to marshal session event: %v", err)
		return
	}
	if err := p.broker.Publish(ctx, contracts.TopicSessionEvents, p.sessionID, value); err != nil {
		p.log.Error("failed to publish session event: %v", err)
	}
}

// Recorder subscribes to the session topic and appends each event as one
// JSON line to a per-session file.
type Recorder struct {
	broker Broker
	log    logger.Logger
	path   string
}

// NewRecorder creates a recorder writing to path.
func NewRecorder(broker Broker, log logger.Logger, path string) *Recorder {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Recorder{broker: broker, log: log, path: path}
}

// Run consumes events until the context is canceled or the broker closes.
// It is intended to run as a goroutine for the lifetime of the session.
func (r *Recorder) Run(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer file.Close()

	msgs, err := r.broker.Subscribe(ctx, contracts.TopicSessionEvents, "caselight-recorder")
	if err != nil {
		return fmt.Errorf("failed to subscribe to session events: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			if _, err := file.Write(append(msg.Value, '\n')); err != nil {
				r.log.Error("failed to append journal entry: %v", err)
			}
		}
	}
}

// NewSessionID returns a fresh identifier for one application run.
// Format: ses-YYYYMMDDTHHmmss-XXXXXXXX (sorts chronologically).
func NewSessionID() string {
	ts := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("ses-%s-%s", ts, uuid.NewString()[:8])
}
