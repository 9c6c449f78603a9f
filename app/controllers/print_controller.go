package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"taskprinter/app/models"
)

// TaskPrinter is what the controller needs from the print service.
type TaskPrinter interface {
	PrintTask(task models.Task) error
}

// PrintController handles HTTP requests for printing tasks.
type PrintController struct {
	printer TaskPrinter
	tmpl    *template.Template
	logger  *zap.Logger
}

// NewPrintController creates a new PrintController.
func NewPrintController(printer TaskPrinter, tmpl *template.Template, logger *zap.Logger) *PrintController {
	return &PrintController{printer: printer, tmpl: tmpl, logger: logger}
}

type apiResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Index handles GET / and serves the HTML print form.
func (c *PrintController) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
		c.logger.Error("render index", zap.Error(err))
	}
}

// PrintForm handles POST /print with form-encoded fields. The date/time
// fields arrive in the browser's datetime-local format.
func (c *PrintController) PrintForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	created, err := models.ParseLocalTime(r.PostFormValue("created_on"))
	if err != nil {
		http.Error(w, "Invalid date/time format", http.StatusBadRequest)
		return
	}
	due, err := models.ParseLocalTime(r.PostFormValue("due_by"))
	if err != nil {
		http.Error(w, "Invalid date/time format", http.StatusBadRequest)
		return
	}

	task := models.Task{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		CreatedOn:   created,
		DueBy:       due,
	}

	if err := c.printer.PrintTask(task); err != nil {
		c.logger.Error("print task", zap.Error(err))
		http.Error(w, "Error printing: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.tmpl.ExecuteTemplate(w, "confirmation.html", task); err != nil {
		c.logger.Error("render confirmation", zap.Error(err))
	}
}

// PrintAPI handles POST /api/print with a JSON task body.
func (c *PrintController) PrintAPI(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, apiResponse{Status: "error", Detail: err.Error()})
		return
	}
	if err := task.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, apiResponse{Status: "error", Detail: err.Error()})
		return
	}

	if err := c.printer.PrintTask(task); err != nil {
		c.logger.Error("print task", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, apiResponse{Status: "error", Detail: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{Status: "success"})
}

func writeJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
