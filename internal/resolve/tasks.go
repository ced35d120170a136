package resolve

import (
	"context"
	"fmt"
	"time"

	"missioncontrol/internal/models"

	"github.com/google/uuid"
)

const suggestedTasksFile = "state/suggested-tasks.json"

// localSuggestedTask is one entry of the on-disk file. Ids have been written
// as both strings and numbers; next_action and nextAction both occur.
type localSuggestedTask struct {
	ID         models.FlexID `json:"id"`
	Title      string        `json:"title"`
	Category   string        `json:"category"`
	Reasoning  string        `json:"reasoning"`
	NextAction string        `json:"next_action"`
	NextAlt    string        `json:"nextAction"`
	Priority   string        `json:"priority"`
	Effort     string        `json:"effort"`
	Status     string        `json:"status"`
	CreatedAt  string        `json:"createdAt"`
}

func (t localSuggestedTask) toModel() models.SuggestedTask {
	next := t.NextAction
	if next == "" {
		next = t.NextAlt
	}
	status := t.Status
	if status == "" {
		status = "pending"
	}
	return models.SuggestedTask{
		TaskID:     t.ID,
		Title:      t.Title,
		Category:   t.Category,
		Reasoning:  t.Reasoning,
		NextAction: next,
		Priority:   t.Priority,
		Effort:     t.Effort,
		Status:     status,
		CreatedAt:  t.CreatedAt,
	}
}

// SuggestedTasks lists agent-proposed tasks, local file first.
func (r *Resolver) SuggestedTasks(ctx context.Context) []models.SuggestedTask {
	var raw []localSuggestedTask
	if r.ws.ReadJSON(suggestedTasksFile, &raw) {
		tasks := make([]models.SuggestedTask, 0, len(raw))
		for _, t := range raw {
			tasks = append(tasks, t.toModel())
		}
		return tasks
	}

	if r.remote != nil {
		if tasks, err := r.remote.GetSuggestedTasks(ctx); err == nil && len(tasks) > 0 {
			return tasks
		}
	}
	return []models.SuggestedTask{}
}

// SetSuggestedTaskStatus marks one task approved or rejected in the local
// file. Mutations write through the file, never the mirror; the next sync
// carries the change over. Unknown ids are a no-op, matching the read-side
// contract of never failing.
func (r *Resolver) SetSuggestedTaskStatus(id, status string) []models.SuggestedTask {
	tasks := r.readRawTasks()
	for i := range tasks {
		if flexString(tasks[i]["id"]) == id {
			tasks[i]["status"] = status
			break
		}
	}
	r.ws.WriteJSON(suggestedTasksFile, tasks)
	return r.decodeRawTasks(tasks)
}

// CreateSuggestedTask appends a new pending task with a generated id.
func (r *Resolver) CreateSuggestedTask(task map[string]interface{}) []models.SuggestedTask {
	tasks := r.readRawTasks()
	task["id"] = "task-" + uuid.NewString()
	task["status"] = "pending"
	task["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	tasks = append(tasks, task)
	r.ws.WriteJSON(suggestedTasksFile, tasks)
	return r.decodeRawTasks(tasks)
}

// readRawTasks keeps unknown fields intact across a mutation, so the
// dashboard never strips data other tools put in the file.
func (r *Resolver) readRawTasks() []map[string]interface{} {
	var tasks []map[string]interface{}
	if !r.ws.ReadJSON(suggestedTasksFile, &tasks) {
		return []map[string]interface{}{}
	}
	return tasks
}

func (r *Resolver) decodeRawTasks(raw []map[string]interface{}) []models.SuggestedTask {
	tasks := make([]models.SuggestedTask, 0, len(raw))
	for _, m := range raw {
		t := localSuggestedTask{
			ID:         models.FlexID(flexString(m["id"])),
			Title:      stringField(m, "title"),
			Category:   stringField(m, "category"),
			Reasoning:  stringField(m, "reasoning"),
			NextAction: stringField(m, "next_action"),
			NextAlt:    stringField(m, "nextAction"),
			Priority:   stringField(m, "priority"),
			Effort:     stringField(m, "effort"),
			Status:     stringField(m, "status"),
			CreatedAt:  stringField(m, "createdAt"),
		}
		tasks = append(tasks, t.toModel())
	}
	return tasks
}

// flexString renders a decoded JSON id (string or number) in its canonical
// string form. JSON numbers decode as float64; whole values print without a
// fraction.
func flexString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id == float64(int64(id)) {
			return fmt.Sprintf("%d", int64(id))
		}
		return fmt.Sprintf("%v", id)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", id)
	}
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
