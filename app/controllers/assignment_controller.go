package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkboard/app/dto"
	"checkboard/app/middleware"
	"checkboard/app/services"
)

type AssignmentController struct{ DB *services.DatabaseService }

func NewAssignmentController(db *services.DatabaseService) *AssignmentController {
	return &AssignmentController{DB: db}
}

// Admin serves /admin/assignments: list all, assign, remove.
func (c *AssignmentController) Admin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		assignments, err := c.DB.ListAssignments()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
			return
		}
		writeJSON(w, http.StatusOK, assignments)
	case http.MethodPost:
		c.assign(w, r)
	case http.MethodDelete:
		c.remove(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *AssignmentController) assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == "" || req.ChecklistID == "" {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing user or checklist id"})
		return
	}
	claims := middleware.ClaimsFrom(r)
	assignedBy := ""
	if claims != nil {
		assignedBy = claims.UserID
	}
	a, err := c.DB.AssignChecklist(req.UserID, req.ChecklistID, assignedBy, req.Priority, req.DueDate, req.Notes)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusCreated, dto.AssignmentResult{Result: dto.OK("Checklist assigned"), Assignment: a})
}

func (c *AssignmentController) remove(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing assignment id"})
		return
	}
	if err := c.DB.RemoveAssignment(id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, dto.OK("Assignment removed"))
}

// Mine serves /assignments: the authenticated user's own assignments.
func (c *AssignmentController) Mine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	assignments, err := c.DB.GetAssignmentsForUser(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}
