package agent

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/retry"
	"github.com/intakehq/intake/pkg/tool"
)

func testPolicy() retry.Policy {
	return retry.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}
}

func testInvoker(t *testing.T, scripted *tool.ScriptedTool) *Invoker {
	t.Helper()
	broker := tool.NewBroker(tool.DefaultBrokerConfig())
	broker.Register(tool.NameLLM, scripted)
	return NewInvoker(broker, testPolicy(), slog.Default())
}

func testInput() *Input {
	return &Input{
		TenantID: "acme",
		JobID:    "job-1",
		Job:      models.JobInput{Text: "Pothole on Main Street"},
	}
}

func TestInvoke_Success(t *testing.T) {
	scripted := tool.NewScriptedTool(
		tool.RespondText(`{"location": "Main Street", "confidence": 0.92}`),
	)
	inv := testInvoker(t, scripted)

	res := inv.Invoke(context.Background(), promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusCompleted, res.Status)
	assert.Equal(t, "Main Street", res.Output["location"])
	require.NotNil(t, res.Confidence)
	assert.Equal(t, 0.92, *res.Confidence)
	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.EndedAt.Before(res.StartedAt))

	// The system prompt rides as a request parameter.
	require.Len(t, scripted.Calls, 1)
	assert.Equal(t, "You extract locations.", scripted.Calls[0].Params["system_prompt"])
	assert.Equal(t, "acme", scripted.Calls[0].TenantID)
}

func TestInvoke_RetriesBusyThenSucceeds(t *testing.T) {
	scripted := tool.NewScriptedTool(
		tool.Fail(tool.ErrToolBusy),
		tool.RespondText(`{"location": "Main Street", "confidence": 0.8}`),
	)
	inv := testInvoker(t, scripted)

	res := inv.Invoke(context.Background(), promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusCompleted, res.Status)
	assert.Equal(t, 2, res.Attempts)
}

func TestInvoke_FatalErrorFailsWithoutRetry(t *testing.T) {
	scripted := tool.NewScriptedTool(tool.Fail(assert.AnError))
	inv := testInvoker(t, scripted)

	res := inv.Invoke(context.Background(), promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusFailed, res.Status)
	assert.Equal(t, 1, res.Attempts)
	assert.Nil(t, res.Confidence)
	assert.Equal(t, 0.0, res.ConfidenceOrZero())
	// Terse, user-safe message; provider internals stay in the logs.
	assert.Equal(t, "agent execution failed", res.Error)
}

func TestInvoke_BusyExhaustsAttempts(t *testing.T) {
	scripted := tool.NewScriptedTool(tool.Fail(tool.ErrToolBusy))
	inv := testInvoker(t, scripted)

	res := inv.Invoke(context.Background(), promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusFailed, res.Status)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, "tool did not respond after retries", res.Error)
}

func TestInvoke_ParseFailure(t *testing.T) {
	scripted := tool.NewScriptedTool(tool.RespondText("I am not able to answer that."))
	inv := testInvoker(t, scripted)

	res := inv.Invoke(context.Background(), promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusParseFailed, res.Status)
	assert.Equal(t, map[string]any{}, res.Output)
	require.NotNil(t, res.Confidence)
	assert.Equal(t, 0.0, *res.Confidence)
}

func TestInvoke_MissingConfidenceDefaults(t *testing.T) {
	scripted := tool.NewScriptedTool(tool.RespondText(`{"location": "Main Street"}`))
	inv := testInvoker(t, scripted)

	res := inv.Invoke(context.Background(), promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusCompleted, res.Status)
	require.NotNil(t, res.Confidence)
	assert.Equal(t, DefaultLLMConfidence, *res.Confidence)
}

func TestInvoke_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	scripted := tool.NewScriptedTool(tool.RespondText(`{}`))
	scripted.Delay = func(ctx context.Context, _ *tool.Request) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	}
	inv := testInvoker(t, scripted)

	res := inv.Invoke(ctx, promptAgent(), testInput())

	assert.Equal(t, models.AgentStatusCancelled, res.Status)
}

func TestInvoke_StructuredToolUsesData(t *testing.T) {
	geocoder := tool.NewScriptedTool(tool.ScriptedStep{
		Response: &tool.Response{Data: map[string]any{
			"place_label": "Main Street",
			"confidence":  0.85,
		}},
	})
	broker := tool.NewBroker(tool.DefaultBrokerConfig())
	broker.Register(tool.NameGeocoder, geocoder)
	inv := NewInvoker(broker, testPolicy(), slog.Default())

	def := &configstore.AgentDefinition{
		AgentID: "geo",
		Tools:   []string{tool.NameGeocoder},
		OutputSchema: map[string]string{
			"place_label": "string",
			"confidence":  "number",
		},
	}

	res := inv.Invoke(context.Background(), def, testInput())

	assert.Equal(t, models.AgentStatusCompleted, res.Status)
	assert.Equal(t, "Main Street", res.Output["place_label"])
	require.NotNil(t, res.Confidence)
	assert.Equal(t, 0.85, *res.Confidence)

	// Structured tools receive the raw user text, not an assembled prompt.
	require.Len(t, geocoder.Calls, 1)
	assert.Equal(t, "Pothole on Main Street", geocoder.Calls[0].Input)
}
