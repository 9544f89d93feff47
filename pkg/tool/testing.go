package tool

import (
	"context"
	"sync"
)

// ScriptedTool is a deterministic Tool for tests: each invocation pops the
// next scripted step (round-robin on exhaustion when Loop is set). Safe for
// concurrent use.
type ScriptedTool struct {
	mu    sync.Mutex
	steps []ScriptedStep
	next  int

	// Loop repeats the last step instead of failing once the script runs out.
	Loop bool

	// Calls records every request received, in arrival order.
	Calls []*Request

	// Delay, when set, is invoked before answering (lets tests block or
	// observe in-flight concurrency).
	Delay func(ctx context.Context, req *Request) error
}

// ScriptedStep is one canned response or error.
type ScriptedStep struct {
	Response *Response
	Err      error
}

// NewScriptedTool builds a tool answering the given steps in order.
func NewScriptedTool(steps ...ScriptedStep) *ScriptedTool {
	return &ScriptedTool{steps: steps}
}

// RespondText is a convenience step carrying only completion text.
func RespondText(text string) ScriptedStep {
	return ScriptedStep{Response: &Response{Text: text}}
}

// Fail is a convenience step carrying only an error.
func Fail(err error) ScriptedStep {
	return ScriptedStep{Err: err}
}

// Invoke implements Tool.
func (t *ScriptedTool) Invoke(ctx context.Context, req *Request) (*Response, error) {
	if t.Delay != nil {
		if err := t.Delay(ctx, req); err != nil {
			return nil, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.Calls = append(t.Calls, req)

	if len(t.steps) == 0 {
		return &Response{Text: "{}"}, nil
	}
	idx := t.next
	if idx >= len(t.steps) {
		if !t.Loop {
			idx = len(t.steps) - 1
		} else {
			idx = idx % len(t.steps)
		}
	}
	t.next++
	step := t.steps[idx]
	if step.Err != nil {
		return nil, step.Err
	}
	return step.Response, nil
}

// CallCount returns the number of invocations so far.
func (t *ScriptedTool) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.Calls)
}
