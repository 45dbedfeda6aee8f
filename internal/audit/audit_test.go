package audit_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/signon/internal/audit"
	"github.com/nfrund/signon/internal/pubsub"
	"github.com/nfrund/signon/internal/submit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the test read log output written from subscriber goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRecorderAndLogger(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	require.NoError(t, audit.NewLogger(logger).Start(ctx, bridge))

	rec := audit.NewRecorder(bridge)

	tests := []struct {
		name    string
		flow    audit.Flow
		outcome submit.Outcome
		topic   string
	}{
		{"account created", audit.FlowRegister, submit.Outcome{Kind: submit.Success, Token: "secret-token"}, "auth.account.created"},
		{"signed in", audit.FlowSignIn, submit.Outcome{Kind: submit.Success, Token: "secret-token"}, "auth.signin.succeeded"},
		{"remote failure", audit.FlowSignIn, submit.Outcome{Kind: submit.Failure, Message: "INVALID_LOGIN_CREDENTIALS"}, "auth.failed"},
		{"validation", audit.FlowRegister, submit.Outcome{Kind: submit.Invalid, Message: submit.ValidationMessage}, "auth.rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, rec.Record(ctx, tt.flow, "a@x.com", "req-1", tt.outcome))

			assert.Eventually(t, func() bool {
				return bytes.Contains([]byte(out.String()), []byte("topic="+tt.topic))
			}, 2*time.Second, 10*time.Millisecond)
		})
	}

	logs := out.String()
	assert.Contains(t, logs, "INVALID_LOGIN_CREDENTIALS")
	assert.Contains(t, logs, "identifier=a@x.com")
	assert.NotContains(t, logs, "secret-token")
}
