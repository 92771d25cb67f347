package usecase

import (
	"encoding/json"
	"net/http"
	"testing"

	"paystand_bridge/internal/domain/entities"
)

func TestClassifyUpstreamResponse(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		body        string
		successKey  string
		kind        entities.UpstreamResultKind
		wantStatus  int
		description string
	}{
		{name: "success key present", status: 200, body: `{"id":"pyr_1","status":"active"}`, successKey: "id", kind: entities.UpstreamSuccess, wantStatus: 200},
		{name: "success key with falsy value", status: 200, body: `{"verified":false}`, successKey: "verified", kind: entities.UpstreamSuccess, wantStatus: 200},
		{name: "success key null", status: 200, body: `{"dropped":null}`, successKey: "dropped", kind: entities.UpstreamSuccess, wantStatus: 200},
		{name: "error with numeric status", status: 402, body: `{"error":{"status":402,"description":"insufficient funds"}}`, successKey: "id", kind: entities.UpstreamFailure, wantStatus: 402, description: "insufficient funds"},
		{name: "error with string status", status: 200, body: `{"error":{"status":"404","description":"bank not found"}}`, successKey: "bank", kind: entities.UpstreamFailure, wantStatus: 404, description: "bank not found"},
		{name: "error without status falls back to http status", status: 409, body: `{"error":{"description":"duplicate"}}`, successKey: "id", kind: entities.UpstreamFailure, wantStatus: 409, description: "duplicate"},
		{name: "error without status on 200 is malformed", status: 200, body: `{"error":{"description":"odd"}}`, successKey: "id", kind: entities.UpstreamMalformed, wantStatus: 200},
		{name: "error without description is malformed", status: 400, body: `{"error":{"status":400}}`, successKey: "id", kind: entities.UpstreamMalformed, wantStatus: 400},
		{name: "neither shape", status: 200, body: `{"foo":"bar"}`, successKey: "account", kind: entities.UpstreamMalformed, wantStatus: 200},
		{name: "not json", status: 502, body: `<html>bad gateway</html>`, successKey: "id", kind: entities.UpstreamMalformed, wantStatus: 502},
		{name: "json array", status: 200, body: `[1,2]`, successKey: "id", kind: entities.UpstreamMalformed, wantStatus: 200},
		{name: "pass-through json", status: 401, body: `{"error":"invalid_client"}`, successKey: "", kind: entities.UpstreamSuccess, wantStatus: 401},
		{name: "pass-through not json", status: 200, body: `nope`, successKey: "", kind: entities.UpstreamMalformed, wantStatus: 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyUpstreamResponse(entities.UpstreamResponse{StatusCode: tc.status, Body: []byte(tc.body)}, tc.successKey)
			if got.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, got.Kind)
			}
			if got.Status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, got.Status)
			}
			if got.Description != tc.description {
				t.Fatalf("expected description %q, got %q", tc.description, got.Description)
			}
			if string(got.Raw) != tc.body {
				t.Fatalf("expected raw body to be kept, got %s", got.Raw)
			}
		})
	}
}

func TestClassifyUpstreamResponse_SuccessPayload(t *testing.T) {
	got := ClassifyUpstreamResponse(entities.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{"account":{"id":"acc_1"},"id":"cus_1"}`)}, "account")
	if got.Kind != entities.UpstreamSuccess {
		t.Fatalf("expected success, got %s", got.Kind)
	}
	if got.Payload["id"] != "cus_1" {
		t.Fatalf("unexpected payload: %+v", got.Payload)
	}
}

func TestClassifyUpstreamResponse_KeepsLargeIntegers(t *testing.T) {
	body := `{"id":"pay_1","sequence":12345678901234567891}`
	got := ClassifyUpstreamResponse(entities.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(body)}, "id")
	if got.Kind != entities.UpstreamSuccess {
		t.Fatalf("expected success, got %s", got.Kind)
	}
	if string(got.Raw) != body {
		t.Fatalf("expected raw body to be kept, got %s", got.Raw)
	}
	if got.Payload["sequence"] != json.Number("12345678901234567891") {
		t.Fatalf("expected exact number, got %#v", got.Payload["sequence"])
	}
}

func TestParseUpstreamStatus(t *testing.T) {
	if parseUpstreamStatus(json.Number("402")) != 402 {
		t.Fatalf("expected json.Number status")
	}
	if parseUpstreamStatus(json.Number("402.5")) != 0 {
		t.Fatalf("fractional json.Number status must be rejected")
	}
	if parseUpstreamStatus(402.5) != 0 {
		t.Fatalf("fractional status must be rejected")
	}
	if parseUpstreamStatus(" 500 ") != 500 {
		t.Fatalf("expected trimmed string status")
	}
	if parseUpstreamStatus(true) != 0 {
		t.Fatalf("expected 0 for unsupported type")
	}
}
