package tool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/retry"
)

func testBroker(quota QuotaConfig) *Broker {
	cfg := DefaultBrokerConfig()
	cfg.Quota = quota
	cfg.BreakerThreshold = 2
	cfg.BreakerCooldown = time.Hour
	return NewBroker(cfg)
}

func TestBrokerRoutesToRegisteredTool(t *testing.T) {
	b := testBroker(QuotaConfig{})
	b.Register("echo", NewScriptedTool(RespondText("hello")))

	resp, err := b.Invoke(context.Background(), "echo", &Request{TenantID: "t1", Input: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)
}

func TestBrokerUnknownTool(t *testing.T) {
	b := testBroker(QuotaConfig{})
	_, err := b.Invoke(context.Background(), "nope", &Request{TenantID: "t1"})
	require.ErrorIs(t, err, ErrUnknownTool)
}

func TestBrokerQuotaExceededReturnsToolBusy(t *testing.T) {
	b := testBroker(QuotaConfig{RatePerSecond: 0.001, Burst: 1})
	b.Register("echo", NewScriptedTool(RespondText("ok")))

	_, err := b.Invoke(context.Background(), "echo", &Request{TenantID: "t1"})
	require.NoError(t, err)

	_, err = b.Invoke(context.Background(), "echo", &Request{TenantID: "t1"})
	require.ErrorIs(t, err, ErrToolBusy)

	// Quotas are per tenant: a different tenant still has budget.
	_, err = b.Invoke(context.Background(), "echo", &Request{TenantID: "t2"})
	require.NoError(t, err)
}

func TestBrokerBreakerOpensAfterConsecutiveFatals(t *testing.T) {
	b := testBroker(QuotaConfig{})
	boom := errors.New("model rejected prompt")
	b.Register("llm", NewScriptedTool(Fail(boom), Fail(boom)))

	for i := 0; i < 2; i++ {
		_, err := b.Invoke(context.Background(), "llm", &Request{TenantID: "t1"})
		require.ErrorIs(t, err, boom)
	}

	// Breaker open: fail fast with ToolUnavailable, no provider call.
	_, err := b.Invoke(context.Background(), "llm", &Request{TenantID: "t1"})
	require.ErrorIs(t, err, ErrToolUnavailable)
}

func TestBrokerRetriableErrorsDoNotTripBreaker(t *testing.T) {
	b := testBroker(QuotaConfig{})
	tr := MarkTransient(errors.New("upstream 503"))
	b.Register("llm", NewScriptedTool(Fail(tr), Fail(tr), Fail(tr), RespondText("ok")))

	for i := 0; i < 3; i++ {
		_, err := b.Invoke(context.Background(), "llm", &Request{TenantID: "t1"})
		require.Error(t, err)
		assert.Equal(t, retry.Retriable, Classify(err))
	}

	resp, err := b.Invoke(context.Background(), "llm", &Request{TenantID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, retry.Success, Classify(nil))
	assert.Equal(t, retry.Retriable, Classify(ErrToolBusy))
	assert.Equal(t, retry.Retriable, Classify(context.DeadlineExceeded))
	assert.Equal(t, retry.Retriable, Classify(MarkTransient(errors.New("503"))))
	assert.Equal(t, retry.Fatal, Classify(ErrToolUnavailable))
	assert.Equal(t, retry.Fatal, Classify(errors.New("bad prompt")))
}
