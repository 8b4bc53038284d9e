package controllers

import (
	"net/http"

	"checkboard/app/models"
)

// ChecklistController serves the static catalog. The catalog is owned by the
// presentation layer conceptually; the service only references checklist ids.
type ChecklistController struct{}

func NewChecklistController() *ChecklistController { return &ChecklistController{} }

func (c *ChecklistController) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Catalog())
}
