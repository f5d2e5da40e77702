package contracts

// Session journal event kinds.
const (
	EventSearch  = "search"
	EventSave    = "save"
	EventDelete  = "delete"
	EventAnalyze = "analyze"
)

// TopicSessionEvents is the journal topic session activity is published to.
// Key: {session_id}
const TopicSessionEvents = "caselight.session.events"

// SessionEvent is one entry in the session activity journal. Events are
// advisory: publishing failures are logged and never block the workflow
// that produced them.
type SessionEvent struct {
	ID          string `json:"id"`
	SessionID   string `json:"session_id"`
	Kind        string `json:"kind"`
	CandidateID string `json:"candidate_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Detail      string `json:"detail,omitempty"`
	Timestamp   string `json:"timestamp"`
}
