package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNewfCapturesCaller(t *testing.T) {
	err := Newf(NotFound, "task %s not found", "abc")

	if err.Message != "task abc not found" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.FileName, "errs_test.go") {
		t.Errorf("FileName = %q, want this test file", err.FileName)
	}
	if err.FuncName == "" {
		t.Error("FuncName is empty")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrCode
		want int
	}{
		{InvalidArgument, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{ResourceExhausted, http.StatusTooManyRequests},
		{Internal, http.StatusInternalServerError},
		{Unavailable, http.StatusServiceUnavailable},
		{InternalOnlyLog, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := Newf(tt.code, "x").HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestEncodeBody(t *testing.T) {
	data, contentType, err := Newf(ResourceExhausted, "task limit reached").Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if contentType != "application/json; charset=utf-8" {
		t.Errorf("content type = %q", contentType)
	}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Code != "resource_exhausted" {
		t.Errorf("code = %q", body.Code)
	}
	if body.Message != "task limit reached" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestIsErrorThroughWrapping(t *testing.T) {
	base := Newf(InvalidArgument, "bad id")
	wrapped := fmt.Errorf("handler: %w", base)

	if !IsError(wrapped) {
		t.Error("IsError(wrapped) = false")
	}
	if got := GetError(wrapped); got.Code != InvalidArgument {
		t.Errorf("GetError code = %v", got.Code)
	}
	if IsError(errors.New("plain")) {
		t.Error("IsError(plain) = true")
	}
}

func TestErrCodeRoundTrip(t *testing.T) {
	data, err := json.Marshal(NotFound)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"not_found"` {
		t.Errorf("marshaled = %s", data)
	}

	var code ErrCode
	if err := json.Unmarshal(data, &code); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if code != NotFound {
		t.Errorf("round trip = %v, want NotFound", code)
	}

	if err := code.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown code name")
	}
}
