// File: executor_test.go
// Title: Command Executor Unit Tests
// Description: Tests for line execution, request ids, audit logging,
//              batches, scripts, stop on error and cancellation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive executor test suite
// - 2026-10-18 v0.2.0: Dispatcher based execution tests

package executor

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	ccerror "github.com/msto63/cmdcall/foundation/core/error"
	"github.com/msto63/cmdcall/foundation/tcol/callable"
	"github.com/msto63/cmdcall/foundation/tcol/registry"
)

func newTestEngine(t *testing.T, opts Options) (*Engine, *int) {
	t.Helper()

	calls := 0
	reg := registry.New(registry.Options{})
	reg.Register("add", callable.Of2(func(a, b int) int {
		calls++
		return a + b
	}))
	reg.Register("echo", callable.Of1(func(s string) string {
		calls++
		return s
	}))

	engine, err := New(reg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine, &calls
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		reg       registry.Dispatcher
		opts      Options
		expectErr ccerror.Code
	}{
		{"defaults", registry.New(registry.Options{}), Options{}, ccerror.CodeUnknown},
		{"with logger", registry.New(registry.Options{}), Options{Logger: log.New(&bytes.Buffer{})}, ccerror.CodeUnknown},
		{"nil dispatcher", nil, Options{}, ccerror.CodeInvalidInput},
		{"negative timeout", registry.New(registry.Options{}), Options{ScriptTimeout: -time.Second}, ccerror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := New(tt.reg, tt.opts)
			if tt.expectErr == ccerror.CodeUnknown {
				if err != nil || engine == nil {
					t.Fatalf("New() = %v, %v", engine, err)
				}
				return
			}
			if !ccerror.HasCode(err, tt.expectErr) {
				t.Errorf("New() code = %v, want %v", ccerror.GetCode(err), tt.expectErr)
			}
		})
	}
}

func TestEngine_Execute(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	tests := []struct {
		line    string
		success bool
		output  string
		code    ccerror.Code
	}{
		{"add 2 3", true, "5", ccerror.CodeUnknown},
		{"echo 'a b'", true, "a b", ccerror.CodeUnknown},
		{"add 2", false, "", ccerror.CodeArity},
		{"add 2 x", false, "", ccerror.CodeConversion},
		{"missing", false, "", ccerror.CodeNotFound},
		{"echo 'open", false, "", ccerror.CodeUnterminatedQuote},
		{"", false, "", ccerror.CodeEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result, err := engine.Execute(context.Background(), tt.line, nil)
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if result.Success != tt.success || result.Output != tt.output {
				t.Errorf("result = %+v", result)
			}
			if result.Command != tt.line {
				t.Errorf("Command = %q, want %q", result.Command, tt.line)
			}
			if !tt.success && !ccerror.HasCode(result.Error, tt.code) {
				t.Errorf("code = %v, want %v", ccerror.GetCode(result.Error), tt.code)
			}
			if tt.success && result.Error != nil {
				t.Errorf("unexpected error %v", result.Error)
			}
		})
	}
}

func TestEngine_Execute_RequestID(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	result, err := engine.Execute(context.Background(), "add 1 1", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(result.RequestID); err != nil {
		t.Errorf("generated request id %q is not a uuid: %v", result.RequestID, err)
	}

	other, _ := engine.Execute(context.Background(), "add 1 1", nil)
	if other.RequestID == result.RequestID {
		t.Error("request ids should differ between calls")
	}

	execCtx := &ExecutionContext{RequestID: "req-42"}
	result, _ = engine.Execute(context.Background(), "add 1 1", execCtx)
	if result.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want req-42", result.RequestID)
	}
	if result.StartedAt.IsZero() {
		t.Error("StartedAt should default to the execution time")
	}
}

func TestEngine_Execute_ContextNotMutated(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	execCtx := &ExecutionContext{Source: "caller"}
	first, _ := engine.Execute(context.Background(), "add 1 1", execCtx)
	second, _ := engine.Execute(context.Background(), "add 1 1", execCtx)

	if execCtx.RequestID != "" || !execCtx.Timestamp.IsZero() {
		t.Errorf("caller context was modified: %+v", execCtx)
	}
	if first.RequestID == second.RequestID {
		t.Error("a reused context should get a fresh request id per call")
	}

	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	result, _ := engine.Execute(context.Background(), "add 1 1", &ExecutionContext{Timestamp: started})
	if !result.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", result.StartedAt, started)
	}
}

func TestEngine_Execute_Cancelled(t *testing.T) {
	engine, calls := newTestEngine(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.Execute(ctx, "add 1 2", nil)
	if err == nil || result != nil {
		t.Fatalf("Execute = %v, %v; want cancellation error", result, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("errors.Is(err, context.Canceled) = false for %v", err)
	}
	if *calls != 0 {
		t.Errorf("command ran %d times", *calls)
	}
}

func TestEngine_AuditLog(t *testing.T) {
	var buf bytes.Buffer
	engine, _ := newTestEngine(t, Options{Logger: log.New(&buf), EnableAuditLog: true})

	engine.Execute(context.Background(), "add 1 2", &ExecutionContext{RequestID: "audit-1"})
	engine.Execute(context.Background(), "add 1", &ExecutionContext{RequestID: "audit-2"})

	out := buf.String()
	for _, want := range []string{
		"command started",
		"command completed",
		"command failed",
		"requestID=audit-1",
		"requestID=audit-2",
		"code=ARITY_MISMATCH",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("audit log missing %q:\n%s", want, out)
		}
	}
}

func TestEngine_AuditLogContext(t *testing.T) {
	var buf bytes.Buffer
	engine, _ := newTestEngine(t, Options{Logger: log.New(&buf), EnableAuditLog: true})

	engine.Execute(context.Background(), "echo hi", &ExecutionContext{
		RequestID: "audit-3",
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Metadata:  map[string]interface{}{"user": "alice", "host": "build-1"},
	})

	out := buf.String()
	for _, want := range []string{
		"startedAt=2026-01-02T03:04:05Z",
		"user=alice",
		"host=build-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("audit log missing %q:\n%s", want, out)
		}
	}
}

func TestEngine_AuditLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	engine, _ := newTestEngine(t, Options{Logger: log.New(&buf)})

	engine.Execute(context.Background(), "add 1 2", nil)

	if strings.Contains(buf.String(), "command started") {
		t.Errorf("unexpected audit entry: %s", buf.String())
	}
}

func TestEngine_ExecuteBatch(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	results, err := engine.ExecuteBatch(context.Background(), []string{"add 1 2", "bad", "echo x"})
	if err != nil {
		t.Fatalf("ExecuteBatch: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].Success || results[1].Success || !results[2].Success {
		t.Errorf("unexpected success pattern: %v %v %v", results[0].Success, results[1].Success, results[2].Success)
	}
	if results[2].Line != 3 {
		t.Errorf("Line = %d, want 3", results[2].Line)
	}
}

func TestEngine_ExecuteBatch_EmptyList(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	results, err := engine.ExecuteBatch(context.Background(), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("ExecuteBatch(nil) = %v, %v", results, err)
	}
}

func TestEngine_ExecuteScript(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	script := "# sums\n" +
		"add 1 2\n" +
		"\n" +
		"   # indented comment\n" +
		"echo 'hello world'\r\n" +
		"add 1\n" +
		"echo done"

	results, err := engine.ExecuteScript(context.Background(), strings.NewReader(script), "test.cc")
	if err != nil {
		t.Fatalf("ExecuteScript: %v", err)
	}

	want := []struct {
		line    int
		success bool
		output  string
	}{
		{2, true, "3"},
		{5, true, "hello world"},
		{6, false, ""},
		{7, true, "done"},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		r := results[i]
		if r.Line != w.line || r.Success != w.success || r.Output != w.output {
			t.Errorf("result %d = line %d success %v output %q; want %+v", i, r.Line, r.Success, r.Output, w)
		}
	}
}

func TestEngine_ExecuteScript_StopOnError(t *testing.T) {
	engine, calls := newTestEngine(t, Options{StopOnError: true})

	script := "add 1 2\nadd x 2\necho never"
	results, err := engine.ExecuteScript(context.Background(), strings.NewReader(script), "stop.cc")
	if err == nil {
		t.Fatal("expected error")
	}
	if !ccerror.HasCode(err, ccerror.CodeExecution) {
		t.Errorf("code = %v, want %v", ccerror.GetCode(err), ccerror.CodeExecution)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	var ccErr *ccerror.Error
	if !errors.As(err, &ccErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if line, _ := ccErr.Detail("line"); line != 2 {
		t.Errorf("line detail = %v, want 2", line)
	}
	if *calls != 1 {
		t.Errorf("calls = %d, want 1", *calls)
	}
}

func TestEngine_ExecuteScript_ReadError(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	r := iotest.ErrReader(errors.New("disk gone"))
	_, err := engine.ExecuteScript(context.Background(), r, "broken.cc")
	if !ccerror.HasCode(err, ccerror.CodeInternal) {
		t.Errorf("code = %v, want %v", ccerror.GetCode(err), ccerror.CodeInternal)
	}
}

func TestEngine_ExecuteScript_Cancelled(t *testing.T) {
	engine, calls := newTestEngine(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := engine.ExecuteScript(ctx, strings.NewReader("add 1 2\nadd 3 4"), "cancel.cc")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(results) != 0 || *calls != 0 {
		t.Errorf("results = %d, calls = %d; want none", len(results), *calls)
	}
}

type slowDispatcher struct {
	delay time.Duration
	calls int
}

func (d *slowDispatcher) Dispatch(line string) (string, error) {
	d.calls++
	time.Sleep(d.delay)
	return line, nil
}

func (d *slowDispatcher) DispatchTokens(name string, toks []string) (string, error) {
	return d.Dispatch(name)
}

func TestEngine_ExecuteScript_Timeout(t *testing.T) {
	slow := &slowDispatcher{delay: 50 * time.Millisecond}
	engine, err := New(slow, Options{ScriptTimeout: 10 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	results, err := engine.ExecuteScript(context.Background(), strings.NewReader("a\nb\nc"), "slow.cc")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
	if len(results) != 1 || slow.calls != 1 {
		t.Errorf("results = %d, calls = %d; want 1", len(results), slow.calls)
	}
}
