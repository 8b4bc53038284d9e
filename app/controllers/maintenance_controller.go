package controllers

import (
	"encoding/json"
	"net/http"

	"checkboard/app/dto"
	"checkboard/app/services"
)

// MaintenanceController exposes the administrative bulk operations:
// export, import and reset.
type MaintenanceController struct{ DB *services.DatabaseService }

func NewMaintenanceController(db *services.DatabaseService) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

func (c *MaintenanceController) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := c.DB.Export()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (c *MaintenanceController) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var snap services.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "invalid snapshot"})
		return
	}
	if err := c.DB.Import(snap); err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, dto.OK("Snapshot imported"))
}

func (c *MaintenanceController) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := c.DB.Reset(); err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, dto.OK("All data cleared and re-initialized"))
}
