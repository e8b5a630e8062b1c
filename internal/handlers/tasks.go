package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gotodo/webapp/internal/services"
	"github.com/gotodo/webapp/internal/session"
	"github.com/gotodo/webapp/internal/web"
	"github.com/gotodo/webapp/types"
	"go.uber.org/zap"
)

// TaskHandler serves the gated task pages: dashboard, task list, and task
// creation.
type TaskHandler struct {
	tasks    *services.TaskService
	renderer *web.Renderer
	log      *zap.Logger
}

func NewTaskHandler(tasks *services.TaskService, renderer *web.Renderer, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		renderer: renderer,
		log:      log,
	}
}

// TaskRouter registers the gated routes on the given router. Every route
// here requires an authenticated session.
func TaskRouter(r chi.Router, tasks *services.TaskService, sessions *session.Manager, renderer *web.Renderer, log *zap.Logger) {
	handler := NewTaskHandler(tasks, renderer, log)

	r.Group(func(r chi.Router) {
		r.Use(RequireSession(sessions))
		r.Get("/dashboard", handler.Dashboard)
		r.Get("/tasks", handler.ListTasks)
		r.Get("/tasks/new", handler.NewTaskForm)
		r.Post("/tasks", handler.CreateTask)
	})
}

type summaryView struct {
	PageTitle string
	Username  string
	Summary   services.TaskSummary
}

type newTaskView struct {
	PageTitle   string
	Error       string
	Title       string
	Description string
	Priority    string
}

// Dashboard renders the task summary for the logged-in user.
func (h *TaskHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	summary, err := h.tasks.ListForUser(r.Context(), sess.UserID)
	if err != nil {
		h.log.Error("load dashboard failed", zap.Error(err), zap.Int64("user_id", sess.UserID))
		http.Error(w, genericErrorMessage, http.StatusInternalServerError)
		return
	}

	h.render(w, "dashboard", summaryView{
		PageTitle: "Dashboard - " + sess.Username,
		Username:  sess.Username,
		Summary:   summary,
	})
}

// ListTasks renders the user's recent tasks with status counts.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	summary, err := h.tasks.ListForUser(r.Context(), sess.UserID)
	if err != nil {
		h.log.Error("list tasks failed", zap.Error(err), zap.Int64("user_id", sess.UserID))
		http.Error(w, genericErrorMessage, http.StatusInternalServerError)
		return
	}

	h.render(w, "tasks", summaryView{
		PageTitle: "My Tasks",
		Username:  sess.Username,
		Summary:   summary,
	})
}

// NewTaskForm renders an empty task creation form.
func (h *TaskHandler) NewTaskForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "new-task", newTaskView{PageTitle: "Create New Task"})
}

// CreateTask processes a task creation submission. A validation failure
// re-renders the form with the submitted values preserved.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionFromContext(r.Context())

	title := r.FormValue("title")
	description := r.FormValue("description")
	priority := r.FormValue("priority")

	_, err := h.tasks.Create(r.Context(), sess.UserID, title, description, types.Priority(priority))
	if err != nil {
		view := newTaskView{
			PageTitle:   "Create New Task",
			Title:       title,
			Description: description,
			Priority:    priority,
		}
		if _, ok := services.AsValidationError(err); ok {
			view.Error = "Task title is required!"
		} else {
			h.log.Error("create task failed", zap.Error(err), zap.Int64("user_id", sess.UserID))
			view.Error = genericErrorMessage
		}
		h.render(w, "new-task", view)
		return
	}

	redirect(w, r, "/tasks")
}

func (h *TaskHandler) render(w http.ResponseWriter, name string, view any) {
	if err := h.renderer.Render(w, http.StatusOK, name, view); err != nil {
		h.log.Error("render failed", zap.String("template", name), zap.Error(err))
	}
}
