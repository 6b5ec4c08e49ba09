package schedule

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prakharVirus1289/calender-scheduler/core/logger"
	"github.com/prakharVirus1289/calender-scheduler/core/metrics"
	"github.com/prakharVirus1289/calender-scheduler/core/model"
	"github.com/prakharVirus1289/calender-scheduler/core/scheduler"
	"github.com/prakharVirus1289/calender-scheduler/infra/store"
)

// Handler serves the scheduling API. The engine itself is stateless; every
// request builds a fresh one from the request's run configuration.
type Handler struct {
	store store.Store
	sink  metrics.Sink
	log   logger.Logger
	now   func() time.Time
}

// NewHandler creates a Handler. The store is mandatory; every route that
// persists or loads documents uses it. A nil sink disables metrics, a nil
// log disables logging.
func NewHandler(st store.Store, sink metrics.Sink, log logger.Logger) *Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Handler{store: st, sink: sink, log: log, now: time.Now}
}

// Routes returns the API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/example", h.Example)
	r.Post("/schedule", h.Schedule)
	r.Post("/validate", h.Validate)
	r.Post("/save", h.Save)
	r.Get("/load", h.Load)
	r.Get("/load_schedule", h.LoadSchedule)
	return r
}

// Health implements GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"message": "Task Scheduler API is running",
	})
}

// Schedule implements POST /api/schedule: it generates a plan, persists the
// snapshot and returns the day-by-day schedule with its warnings.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}
	tasks, blocked, cfg, runCfg, err := req.BuildRun(h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eng, err := scheduler.New(cfg, h.log)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	started := h.now()
	days, warnings := eng.Schedule(tasks, blocked)
	runID := uuid.NewString()

	if warnings == nil {
		warnings = []string{}
	}
	if days == nil {
		days = []model.DaySchedule{}
	}

	resp := map[string]any{
		"success":             true,
		"run_id":              runID,
		"schedule":            days,
		"validation_warnings": warnings,
		"total_days":          len(days),
	}

	snap := store.Snapshot{
		RunID:    runID,
		Tasks:    tasks,
		Schedule: days,
		Warnings: warnings,
		Config:   runCfg,
		SavedAt:  h.now(),
	}
	if err := h.store.SaveSchedule(r.Context(), snap); err != nil {
		h.log.Errorf("save schedule snapshot: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to persist schedule: "+err.Error())
		return
	}
	if js, ok := h.store.(*store.JSONStore); ok {
		resp["saved_to"] = js.SchedulePath()
	}

	h.recordRun(days, warnings, len(tasks), h.now().Sub(started))
	h.log.Infof("run %s: %d tasks planned over %d days", runID, len(tasks), len(days))
	writeJSON(w, http.StatusOK, resp)
}

// Validate implements POST /api/validate: the feasibility pre-pass without
// generating a plan.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}
	for _, t := range req.Tasks {
		if err := t.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	blocked, err := model.ClosedSlotsToIntervals(req.ClosedSlots)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := scheduler.ParseStartDate(req.StartDate, h.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	eng, err := scheduler.New(scheduler.Config{Start: start, BufferMinutes: scheduler.DefaultBufferMinutes}, h.log)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	warnings := eng.Validate(req.Tasks, blocked, req.LookaheadDays)
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"warnings": warnings,
		"is_valid": len(warnings) == 0,
	})
}

// Save implements POST /api/save: persists tasks and blocked time without
// generating a schedule.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}
	if req.Tasks == nil || req.ClosedSlots == nil {
		writeError(w, http.StatusBadRequest, "missing required fields: tasks and closed_slots are required")
		return
	}

	doc := store.TasksDocument{
		Tasks:       req.Tasks,
		ClosedSlots: req.ClosedSlots,
		SavedAt:     h.now(),
	}
	if req.Config != nil {
		doc.Config = *req.Config
	}
	if err := h.store.SaveTasks(r.Context(), doc); err != nil {
		writeError(w, http.StatusInternalServerError, "save error: "+err.Error())
		return
	}

	resp := map[string]any{
		"success": true,
		"message": "All data saved successfully",
		"saved_data": map[string]any{
			"tasks":        len(req.Tasks),
			"closed_slots": len(req.ClosedSlots),
			"has_config":   req.Config != nil,
		},
	}
	if js, ok := h.store.(*store.JSONStore); ok {
		resp["saved_to"] = js.TasksPath()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Load implements GET /api/load.
func (h *Handler) Load(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.LoadTasks(r.Context())
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"message": "No saved tasks found",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "load error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    doc,
		"message": "Tasks loaded successfully",
	})
}

// LoadSchedule implements GET /api/load_schedule.
func (h *Handler) LoadSchedule(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.LoadSchedule(r.Context())
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"message": "No saved schedule found",
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "load error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    snap,
		"message": "Schedule loaded successfully",
	})
}

// Example implements GET /api/example with a ready-to-post payload.
func (h *Handler) Example(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, examplePayload())
}

func (h *Handler) recordRun(days []model.DaySchedule, warnings []string, tasks int, dur time.Duration) {
	stats := metrics.RunStats{
		Days:               len(days),
		ValidationWarnings: len(warnings),
		Tasks:              tasks,
		Duration:           dur,
	}
	for _, d := range days {
		stats.Sessions += len(d.Sessions)
		stats.DayWarnings += len(d.Warnings)
	}
	if err := h.sink.RecordRun(stats); err != nil {
		h.log.Warnf("record run metrics: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func examplePayload() map[string]any {
	return map[string]any{
		"closed_slots": []model.ClosedSlot{
			{StartHour: 0, EndHour: 8, AppliesTo: model.AppliesAllDays},
			{StartHour: 22, EndHour: 24, AppliesTo: model.AppliesAllDays},
			{StartHour: 12, EndHour: 13, AppliesTo: model.AppliesAllDays},
			{StartHour: 20, EndHour: 21, AppliesTo: model.AppliesAllDays},
			{StartHour: 8, EndHour: 10, AppliesTo: model.AppliesWeekdays, Weekdays: []int{5, 6}},
		},
		"tasks": []model.Task{
			{ID: 1, Name: "Complete Project Report", TotalHours: 10, HoursPerSession: 2, Priority: model.PriorityHigh, DeadlineDay: 10},
			{ID: 2, Name: "Study for Exam", TotalHours: 9, HoursPerSession: 3, Priority: model.PriorityHigh, DeadlineDay: 7},
		},
		"buffer_minutes":    scheduler.DefaultBufferMinutes,
		"max_tasks_per_day": scheduler.DefaultMaxNewTasksPerDay,
		"start_date":        "now",
	}
}
