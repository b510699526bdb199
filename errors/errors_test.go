package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestPluginExecutionWrapsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := PluginExecution("summarize", cause)

	if err.Code != ErrCodePluginExecution {
		t.Errorf("code = %s", err.Code)
	}
	if err.Details["plugin"] != "summarize" {
		t.Errorf("plugin detail = %v", err.Details["plugin"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestRegistryErrors(t *testing.T) {
	dup := DuplicatePlugin("stats")
	if dup.Code != ErrCodeDuplicatePlugin || dup.HTTPStatus != http.StatusConflict {
		t.Errorf("duplicate: code=%s status=%d", dup.Code, dup.HTTPStatus)
	}

	unk := UnknownPlugin("nope")
	if unk.Code != ErrCodeUnknownPlugin || unk.HTTPStatus != http.StatusNotFound {
		t.Errorf("unknown: code=%s status=%d", unk.Code, unk.HTTPStatus)
	}
}

func TestRemoteCausesAreDistinguishable(t *testing.T) {
	cases := []struct {
		err  *AppError
		code ErrorCode
	}{
		{RemoteAuth("openai"), ErrCodeRemoteAuth},
		{RemoteRateLimited("openai"), ErrCodeRemoteRateLimited},
		{RemoteModelNotFound("openai", "gpt-42"), ErrCodeRemoteModelNotFound},
		{RemoteUnavailable("ollama", stderrors.New("dial tcp")), ErrCodeRemoteUnavailable},
	}
	for _, c := range cases {
		if c.err.Code != c.code {
			t.Errorf("got %s, want %s", c.err.Code, c.code)
		}
	}
}

func TestRetryable(t *testing.T) {
	if !RemoteRateLimited("x").Retryable {
		t.Error("rate limited should be retryable")
	}
	if RemoteAuth("x").Retryable {
		t.Error("auth failure should not be retryable")
	}
	if !IsRetryableCode(ErrCodeTimeout) {
		t.Error("timeout should be retryable")
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	remote := RemoteRateLimited("openai")
	wrapped := PluginExecution("summarize", remote)
	outer := fmt.Errorf("pipeline: %w", wrapped)

	if !HasCode(outer, ErrCodeRemoteRateLimited) {
		t.Error("expected rate-limit code in chain")
	}
	if !HasCode(outer, ErrCodePluginExecution) {
		t.Error("expected plugin-execution code in chain")
	}
	if HasCode(outer, ErrCodeRemoteAuth) {
		t.Error("did not expect auth code")
	}
}

func TestToResponse(t *testing.T) {
	resp := UnknownPlugin("ghost").ToResponse()
	if resp.Error.Code != ErrCodeUnknownPlugin {
		t.Errorf("response code = %s", resp.Error.Code)
	}
	if resp.Error.Message == "" {
		t.Error("empty message")
	}
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", InvalidInput("bad body"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if appErr.Code != ErrCodeInvalidInput {
		t.Errorf("code = %s", appErr.Code)
	}
	if IsAppError(stderrors.New("plain")) {
		t.Error("plain error is not an AppError")
	}
}
