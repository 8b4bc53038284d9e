package controllers

import (
	"encoding/json"
	"net/http"

	"checkboard/app/dto"
	jwtutil "checkboard/app/jwt"
	"checkboard/app/services"
)

type AuthController struct {
	DB     *services.DatabaseService
	Signer *jwtutil.Signer
}

func NewAuthController(db *services.DatabaseService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{DB: db, Signer: signer}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing credentials"})
		return
	}
	u, err := c.DB.Authenticate(req.Username, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, dto.FromError(err))
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Username, u.Role)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.Result{Message: "token error"})
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: token, User: u})
}

// Register handles self-service signup; accounts always get the user role.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.Result{Message: "missing credentials"})
		return
	}
	u, err := c.DB.RegisterUser(req.Username, req.Password, "", "")
	if err != nil {
		writeJSON(w, http.StatusConflict, dto.FromError(err))
		return
	}
	writeJSON(w, http.StatusCreated, dto.UserResult{Result: dto.OK("User registered"), User: u})
}
