package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"checkboard/app/dto"
	"checkboard/app/middleware"
	"checkboard/app/services"
)

type AdminController struct{ DB *services.DatabaseService }

func NewAdminController(db *services.DatabaseService) *AdminController {
	return &AdminController{DB: db}
}

// Users serves the /admin/users collection: list, create, delete.
func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.create(w, r)
	case http.MethodDelete:
		c.delete(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c *AdminController) list(w http.ResponseWriter, r *http.Request) {
	users, err := c.DB.ListUsers()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (c *AdminController) create(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing credentials"})
		return
	}
	claims := middleware.ClaimsFrom(r)
	createdBy := ""
	if claims != nil {
		createdBy = claims.UserID
	}
	u, err := c.DB.RegisterUser(req.Username, req.Password, req.Role, createdBy)
	if err != nil {
		writeJSON(w, http.StatusConflict, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusCreated, dto.UserResult{Result: dto.OK("User created"), User: u})
}

func (c *AdminController) delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("id")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing user id"})
		return
	}
	claims := middleware.ClaimsFrom(r)
	actingID := ""
	if claims != nil {
		actingID = claims.UserID
	}
	if err := c.DB.DeleteUser(userID, actingID); err != nil {
		writeJSON(w, statusForDeleteError(err), dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusOK, dto.OK("User deleted"))
}

func statusForDeleteError(err error) int {
	switch {
	case errors.Is(err, services.ErrInsufficientPrivilege):
		return http.StatusForbidden
	case errors.Is(err, services.ErrProtectedAccount):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
