// Package audit publishes the resolution of each form submission on the bus and
// writes them to the log.
package audit

import (
	"context"
	"time"

	"github.com/nfrund/signon/internal/pubsub"
	"github.com/nfrund/signon/internal/submit"
)

// Flow names the form a submission came from.
type Flow string

const (
	FlowRegister Flow = "register"
	FlowSignIn   Flow = "signin"
)

// Entry is the payload of every audit event.
type Entry struct {
	Flow      Flow      `json:"flow"`
	Result    string    `json:"result"`
	Message   string    `json:"message,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}

var (
	AccountCreated  = pubsub.NewEvent[Entry]("auth.account.created")
	SignInSucceeded = pubsub.NewEvent[Entry]("auth.signin.succeeded")
	Failed          = pubsub.NewEvent[Entry]("auth.failed")
	Rejected        = pubsub.NewEvent[Entry]("auth.rejected")
)

// Events lists every audit event.
var Events = []pubsub.Event[Entry]{AccountCreated, SignInSucceeded, Failed, Rejected}

// Recorder turns submission outcomes into audit events.
type Recorder struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewRecorder creates a Recorder publishing to pub.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub, now: time.Now}
}

// Record publishes the event matching out. The token is never included.
func (r *Recorder) Record(ctx context.Context, flow Flow, identifier, requestID string, out submit.Outcome) error {
	entry := Entry{
		Flow:      flow,
		Result:    out.Kind.String(),
		Message:   out.Message,
		RequestID: requestID,
		At:        r.now().UTC(),
	}
	return eventFor(flow, out.Kind).Publish(ctx, r.pub, identifier, entry)
}

func eventFor(flow Flow, kind submit.Kind) pubsub.Event[Entry] {
	switch kind {
	case submit.Invalid:
		return Rejected
	case submit.Success:
		if flow == FlowRegister {
			return AccountCreated
		}
		return SignInSucceeded
	default:
		return Failed
	}
}
