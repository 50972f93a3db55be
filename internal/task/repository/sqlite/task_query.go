package sqlite

import (
	"strings"

	repo "atrova/internal/task/repository"
)

var orderColumns = map[string]string{
	"":                "created_at DESC",
	"created_at DESC": "created_at DESC",
	"created_at ASC":  "created_at ASC",
	"due_at ASC":      "due_at IS NULL, due_at ASC",
	"due_at DESC":     "due_at DESC",
}

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, opt.OwnerID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListFilter builds the WHERE clause shared by the count and page queries of ListTasks.
func (r *implRepository) buildListFilter(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.OwnerID != "" {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, opt.OwnerID)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.DueFrom != nil {
		conditions = append(conditions, "due_at >= ?")
		args = append(args, opt.DueFrom.Unix())
	}
	if opt.DueTo != nil {
		conditions = append(conditions, "due_at <= ?")
		args = append(args, opt.DueTo.Unix())
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildPage builds ORDER + LIMIT + OFFSET. Unknown orderings fall back to newest first.
func (r *implRepository) buildPage(opt repo.ListTasksOptions) (string, []any) {
	orderBy, ok := orderColumns[opt.OrderBy]
	if !ok {
		orderBy = orderColumns[""]
	}
	parts := []string{"ORDER BY " + orderBy}
	var args []any

	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			parts = append(parts, "OFFSET ?")
			args = append(args, opt.Offset)
		}
	}
	return strings.Join(parts, " "), args
}
