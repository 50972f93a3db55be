package http

import (
	"strings"
	"time"

	"atrova/internal/model"
	"atrova/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title           string     `json:"title"            binding:"required,max=255"`
	DueAt           *time.Time `json:"due_at"`
	Completed       bool       `json:"completed"`
	Priority        string     `json:"priority"         binding:"omitempty,oneof=low medium high"`
	DurationMinutes int        `json:"duration_minutes" binding:"min=0"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:           r.Title,
		DueAt:           r.DueAt,
		Completed:       r.Completed,
		Priority:        model.Priority(r.Priority),
		DurationMinutes: r.DurationMinutes,
	}
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	Due       string `form:"due"`
	Sort      string `form:"sort" binding:"omitempty,oneof=created due"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		Due:       strings.TrimSpace(r.Due),
		SortByDue: r.Sort == "due",
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID              string     `json:"-"` // populated from URI param
	Title           *string    `json:"title"            binding:"omitempty,max=255"`
	DueAt           *time.Time `json:"due_at"`
	ClearDue        bool       `json:"clear_due"`
	Completed       *bool      `json:"completed"`
	Priority        *string    `json:"priority"         binding:"omitempty,oneof=low medium high"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=0"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:              r.ID,
		Title:           r.Title,
		DueAt:           r.DueAt,
		ClearDue:        r.ClearDue,
		Completed:       r.Completed,
		DurationMinutes: r.DurationMinutes,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

// ---

type extractReq struct {
	Message string `json:"message" binding:"required"`
	// ReceivedAt is when the user wrote the message, RFC3339. Defaults to now.
	ReceivedAt *time.Time `json:"received_at"`
}

func (r extractReq) toInput() task.CreateFromTextInput {
	in := task.CreateFromTextInput{Text: r.Message}
	if r.ReceivedAt != nil {
		in.ReceivedAt = *r.ReceivedAt
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	DueAt           *time.Time `json:"due_at"`
	Completed       bool       `json:"completed"`
	AIScheduled     bool       `json:"ai_scheduled"`
	Priority        string     `json:"priority"`
	DurationMinutes int        `json:"duration_minutes"`
	Source          string     `json:"source"`
	CalendarLink    string     `json:"calendar_link,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		DueAt:           t.DueAt,
		Completed:       t.Completed,
		AIScheduled:     t.AIScheduled,
		Priority:        string(t.Priority),
		DurationMinutes: t.DurationMinutes,
		Source:          string(t.Source),
		CalendarLink:    t.CalendarLink,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type taskEnvelope struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type extractionResp struct {
	Task      string `json:"task"`
	Timestamp string `json:"timestamp"`
}

type extractResp struct {
	Task       taskResp       `json:"task"`
	Extraction extractionResp `json:"extraction"`
}

func (h *handler) newExtractResp(out task.CreateFromTextOutput) extractResp {
	return extractResp{
		Task: newTaskResp(out.Task),
		Extraction: extractionResp{
			Task:      out.Extraction.Task,
			Timestamp: out.Extraction.Timestamp,
		},
	}
}
