package schedule

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prakharVirus1289/calender-scheduler/infra/store"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st, err := store.NewJSONStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	h := NewHandler(st, nil, nil)
	h.now = func() time.Time { return time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC) }
	return h
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
	}
	return body
}

const scheduleBody = `{
	"closed_slots": [
		{"start_hour": 0, "end_hour": 8, "applies_to": "all_days"},
		{"start_hour": 22, "end_hour": 24, "applies_to": "all_days"},
		{"start_hour": 12, "end_hour": 13, "applies_to": "all_days"},
		{"start_hour": 20, "end_hour": 21, "applies_to": "all_days"}
	],
	"tasks": [
		{"id": 1, "name": "Complete Project Report", "total_hours": 10,
		 "hours_per_session": 2, "priority": 1, "deadline_day": 10}
	],
	"buffer_minutes": 15,
	"max_tasks_per_day": 2,
	"start_date": "2024-02-15"
}`

func TestHandler_Schedule(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.Routes(), "/schedule", scheduleBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)

	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}
	if body["run_id"] == "" || body["run_id"] == nil {
		t.Fatalf("missing run_id")
	}
	if body["total_days"] != float64(5) {
		t.Fatalf("total_days = %v, want 5", body["total_days"])
	}
	if _, ok := body["saved_to"]; !ok {
		t.Fatalf("missing saved_to")
	}

	days := body["schedule"].([]any)
	first := days[0].(map[string]any)
	if first["date"] != "2024-02-15" {
		t.Fatalf("date = %v", first["date"])
	}
	if first["date_formatted"] != "Thursday, February 15, 2024" {
		t.Fatalf("date_formatted = %v", first["date_formatted"])
	}
	sessions := first["scheduled_tasks"].([]any)
	sess := sessions[0].(map[string]any)
	if sess["start_time"] != "08:00" || sess["end_time"] != "10:00" {
		t.Fatalf("session = %v", sess)
	}
	if sess["progress"] != "2.0h / 10.0h" {
		t.Fatalf("progress = %v", sess["progress"])
	}

	// The run is persisted as the last schedule.
	rec = get(t, h.Routes(), "/load_schedule")
	if rec.Code != http.StatusOK {
		t.Fatalf("load_schedule status %d", rec.Code)
	}
	loaded := decode(t, rec)
	data := loaded["data"].(map[string]any)
	if data["run_id"] != body["run_id"] {
		t.Fatalf("persisted run_id = %v, want %v", data["run_id"], body["run_id"])
	}
}

func TestHandler_ScheduleRejectsBadPayloads(t *testing.T) {
	h := newTestHandler(t)
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"tasks": [`},
		{"no tasks", `{"tasks": [], "closed_slots": []}`},
		{"invalid priority", `{"tasks": [{"id": 1, "name": "x", "total_hours": 2, "hours_per_session": 2, "priority": 9, "deadline_day": 5}]}`},
		{"bad applies_to", `{"tasks": [{"id": 1, "name": "x", "total_hours": 2, "hours_per_session": 2, "priority": 1, "deadline_day": 5}], "closed_slots": [{"start_hour": 0, "end_hour": 8, "applies_to": "sometimes"}]}`},
		{"bad start_date", `{"tasks": [{"id": 1, "name": "x", "total_hours": 2, "hours_per_session": 2, "priority": 1, "deadline_day": 5}], "start_date": "tomorrow"}`},
	}
	for _, tc := range cases {
		rec := post(t, h.Routes(), "/schedule", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", tc.name, rec.Code)
		}
		if _, ok := decode(t, rec)["error"]; !ok {
			t.Errorf("%s: no error message", tc.name)
		}
	}
}

func TestHandler_Validate(t *testing.T) {
	h := newTestHandler(t)
	body := `{
		"closed_slots": [
			{"start_hour": 0, "end_hour": 8, "applies_to": "all_days"},
			{"start_hour": 10, "end_hour": 24, "applies_to": "all_days"}
		],
		"tasks": [
			{"id": 1, "name": "marathon", "total_hours": 16, "hours_per_session": 8, "priority": 1, "deadline_day": 10}
		],
		"start_date": "2024-02-15"
	}`
	rec := post(t, h.Routes(), "/validate", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	got := decode(t, rec)
	if got["is_valid"] != false {
		t.Fatalf("is_valid = %v", got["is_valid"])
	}
	warnings := got["warnings"].([]any)
	if len(warnings) != 1 || !strings.Contains(warnings[0].(string), "marathon") {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestHandler_ValidateFeasible(t *testing.T) {
	h := newTestHandler(t)
	body := `{
		"closed_slots": [{"start_hour": 0, "end_hour": 8, "applies_to": "all_days"}],
		"tasks": [{"id": 1, "name": "x", "total_hours": 4, "hours_per_session": 2, "priority": 2, "deadline_day": 5}]
	}`
	rec := post(t, h.Routes(), "/validate", body)
	got := decode(t, rec)
	if got["is_valid"] != true {
		t.Fatalf("is_valid = %v: %v", got["is_valid"], got["warnings"])
	}
}

func TestHandler_SaveAndLoad(t *testing.T) {
	h := newTestHandler(t)
	body := `{
		"tasks": [{"id": 1, "name": "x", "total_hours": 4, "hours_per_session": 2, "priority": 1, "deadline_day": 5}],
		"closed_slots": [{"start_hour": 0, "end_hour": 8, "applies_to": "all_days"}],
		"config": {"buffer_minutes": 10, "max_tasks_per_day": 3, "start_date": "now"}
	}`
	rec := post(t, h.Routes(), "/save", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("save status %d: %s", rec.Code, rec.Body.String())
	}
	saved := decode(t, rec)["saved_data"].(map[string]any)
	if saved["tasks"] != float64(1) || saved["has_config"] != true {
		t.Fatalf("saved_data = %v", saved)
	}

	rec = get(t, h.Routes(), "/load")
	if rec.Code != http.StatusOK {
		t.Fatalf("load status %d", rec.Code)
	}
	data := decode(t, rec)["data"].(map[string]any)
	cfg := data["config"].(map[string]any)
	if cfg["buffer_minutes"] != float64(10) || cfg["max_tasks_per_day"] != float64(3) {
		t.Fatalf("config = %v", cfg)
	}
}

func TestHandler_SaveRequiresTasksAndSlots(t *testing.T) {
	h := newTestHandler(t)
	rec := post(t, h.Routes(), "/save", `{"tasks": [{"id": 1, "name": "x", "total_hours": 4, "hours_per_session": 2, "priority": 1, "deadline_day": 5}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestHandler_LoadNotFound(t *testing.T) {
	h := newTestHandler(t)
	for _, path := range []string{"/load", "/load_schedule"} {
		rec := get(t, h.Routes(), path)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: status %d, want 404", path, rec.Code)
		}
		if decode(t, rec)["success"] != false {
			t.Fatalf("%s: success should be false", path)
		}
	}
}

func TestHandler_Health(t *testing.T) {
	h := newTestHandler(t)
	rec := get(t, h.Routes(), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if decode(t, rec)["status"] != "healthy" {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestHandler_Example(t *testing.T) {
	h := newTestHandler(t)
	rec := get(t, h.Routes(), "/example")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := decode(t, rec)
	if _, ok := body["tasks"]; !ok {
		t.Fatalf("example payload missing tasks: %s", rec.Body.String())
	}
	// The example must itself be a valid schedule request.
	rec = post(t, h.Routes(), "/schedule", rec.Body.String())
	if rec.Code != http.StatusOK {
		t.Fatalf("example payload rejected: %s", rec.Body.String())
	}
}
