package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/intakehq/intake/pkg/configstore"
	"github.com/intakehq/intake/pkg/models"
	"github.com/intakehq/intake/pkg/retry"
	"github.com/intakehq/intake/pkg/tool"
)

// Invoker runs one agent definition end to end. It is stateless and safe for
// concurrent use; the scheduler calls it from parallel workers.
type Invoker struct {
	broker *tool.Broker
	policy retry.Policy
	logger *slog.Logger
}

// NewInvoker creates an invoker over the given broker and retry policy.
func NewInvoker(broker *tool.Broker, policy retry.Policy, logger *slog.Logger) *Invoker {
	return &Invoker{
		broker: broker,
		policy: policy,
		logger: logger.With("component", "agent_invoker"),
	}
}

// Invoke executes the agent and always returns a result; errors are folded
// into the result's status per the failure policy (failed / parse_failed /
// cancelled). The only suspension point is the tool call.
func (inv *Invoker) Invoke(ctx context.Context, def *configstore.AgentDefinition, in *Input) *models.AgentResult {
	started := time.Now().UTC()
	result := &models.AgentResult{
		AgentID:   def.AgentID,
		StartedAt: started,
	}

	toolName := def.PrimaryTool()
	if toolName == "" {
		toolName = tool.NameLLM
	}
	req := inv.buildRequest(toolName, def, in)

	var resp *tool.Response
	attempts, err := retry.Do(ctx, inv.policy, tool.Classify, func(ctx context.Context) error {
		var callErr error
		resp, callErr = inv.broker.Invoke(ctx, toolName, req)
		return callErr
	})
	result.Attempts = attempts
	result.EndedAt = time.Now().UTC()

	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			result.Status = models.AgentStatusCancelled
			result.Error = "cancelled"
			return result
		}
		inv.logger.Warn("Agent tool call failed",
			"job_id", in.JobID,
			"agent_id", def.AgentID,
			"tool", toolName,
			"attempts", attempts,
			"error", err)
		result.Status = models.AgentStatusFailed
		result.Error = userSafeMessage(err)
		return result
	}

	raw, ok := inv.extractOutput(toolName, resp)
	if !ok {
		inv.logger.Warn("Agent output did not parse as JSON",
			"job_id", in.JobID,
			"agent_id", def.AgentID,
			"response_length", len(resp.Text))
		result.Status = models.AgentStatusParseFailed
		result.Output = map[string]any{}
		result.Confidence = models.Float64Ptr(0)
		result.Error = "output was not valid JSON"
		return result
	}

	output, confidence := ValidateOutput(def.OutputSchema, raw, DefaultLLMConfidence)
	result.Status = models.AgentStatusCompleted
	result.Output = output
	result.Confidence = models.Float64Ptr(confidence)
	result.EndedAt = time.Now().UTC()
	return result
}

// buildRequest shapes the tool request by provider kind: the llm provider
// gets the assembled prompt plus the agent's system prompt, structured
// providers get the raw user text.
func (inv *Invoker) buildRequest(toolName string, def *configstore.AgentDefinition, in *Input) *tool.Request {
	req := &tool.Request{
		TenantID: in.TenantID,
		JobID:    in.JobID,
		AgentID:  def.AgentID,
	}
	if toolName == tool.NameLLM {
		req.Input = BuildPrompt(def, in)
		req.Params = map[string]any{"system_prompt": def.SystemPrompt}
		return req
	}
	req.Input = in.Job.Text
	if req.Input == "" {
		req.Input = in.Job.Question
	}
	return req
}

// extractOutput prefers the provider's structured Data; text responses go
// through the JSON rescue parser.
func (inv *Invoker) extractOutput(toolName string, resp *tool.Response) (map[string]any, bool) {
	if toolName != tool.NameLLM && len(resp.Data) > 0 {
		return resp.Data, true
	}
	return ParseOutput(resp.Text)
}

// userSafeMessage keeps failure text terse and free of provider internals.
func userSafeMessage(err error) string {
	switch {
	case errors.Is(err, tool.ErrToolUnavailable):
		return "tool unavailable"
	case errors.Is(err, tool.ErrUnknownTool):
		return "tool not configured"
	case errors.Is(err, retry.ErrAttemptsExhausted):
		return "tool did not respond after retries"
	default:
		return "agent execution failed"
	}
}
