package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkboard/app/dto"
	"checkboard/app/middleware"
	"checkboard/app/services"
)

type ProgressController struct{ DB *services.DatabaseService }

func NewProgressController(db *services.DatabaseService) *ProgressController {
	return &ProgressController{DB: db}
}

// Progress serves /progress for the authenticated user: read one or all
// records, or save one.
func (c *ProgressController) Progress(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	switch r.Method {
	case http.MethodGet:
		if checklistID := r.URL.Query().Get("checklistId"); checklistID != "" {
			p, err := c.DB.GetProgress(claims.UserID, checklistID)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, services.ErrNotFound) {
					status = http.StatusNotFound
				}
				writeJSON(w, status, dto.FromError(err))
				return
			}
			writeJSON(w, http.StatusOK, p)
			return
		}
		records, err := c.DB.GetAllProgress(claims.UserID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
			return
		}
		writeJSON(w, http.StatusOK, records)
	case http.MethodPost:
		var req dto.SaveProgressRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ChecklistID == "" {
			writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing checklist id"})
			return
		}
		p, err := c.DB.SaveProgress(claims.UserID, req.ChecklistID, req.CompletedItems)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
			return
		}
		writeJSON(w, http.StatusOK, dto.ProgressResult{Result: dto.OK("Progress saved"), Progress: p})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Stats serves /stats: completion totals for the authenticated user.
func (c *ProgressController) Stats(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	stats, err := c.DB.GetUserStats(claims.UserID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
