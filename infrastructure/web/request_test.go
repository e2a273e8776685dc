package web

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

type decodeModel struct {
	Title string `json:"title"`
}

var errTitleRequired = errors.New("title is required")

func (m decodeModel) Validate() error {
	if m.Title == "" {
		return errTitleRequired
	}
	return nil
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"title":"buy milk"}`, false},
		{"empty body", ``, true},
		{"malformed json", `{"title":`, true},
		{"fails validation", `{"title":""}`, true},
		{"unknown fields tolerated", `{"title":"a","extra":1}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/tasks", strings.NewReader(tt.body))

			var m decodeModel
			err := Decode(r, &m)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeRunsValidator(t *testing.T) {
	r := httptest.NewRequest("POST", "/tasks", strings.NewReader(`{"title":""}`))

	var m decodeModel
	err := Decode(r, &m)
	if !errors.Is(err, errTitleRequired) {
		t.Fatalf("Decode err = %v, want wrapped %v", err, errTitleRequired)
	}
}

func TestParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/tasks/abc", nil)
	r.SetPathValue("task_id", "abc")

	if got := Param(r, "task_id"); got != "abc" {
		t.Errorf("Param = %q, want %q", got, "abc")
	}
	if got := Param(r, "missing"); got != "" {
		t.Errorf("Param(missing) = %q, want empty", got)
	}
}
