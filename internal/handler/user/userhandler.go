package userhandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bazaan/dashboarddev/internal/domain"
	"github.com/bazaan/dashboarddev/pkg/dto"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

type UserService interface {
	Register(email, password, name string) (string, error)
	Login(email, password string) (string, error)
}

type UserHandler struct {
	srv UserService
}

func New(srv UserService) *UserHandler {
	return &UserHandler{
		srv: srv,
	}
}

func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var register dto.Register

	if err := json.NewDecoder(r.Body).Decode(&register); err != nil {
		logger.Log.Warn("error while decoding a register request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer closeBody(r.Body)

	if err := register.IsValid(); err != nil {
		logger.Log.Warn("invalid register fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userID, err := uh.srv.Register(register.Email, register.Password, register.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// account stays PENDING until an admin approves it
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(map[string]string{"id": userID, "status": domain.UserStatusPending}); err != nil {
		logger.Log.Error("error while encoding register response", logger.Error(err))
	}
}

func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var login dto.Login

	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		logger.Log.Warn("error while decoding a login request")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}
	defer closeBody(r.Body)

	if err := login.IsValid(); err != nil {
		logger.Log.Warn("invalid login fields", logger.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := uh.srv.Login(login.Email, login.Password)
	if err != nil {
		if errors.Is(err, domain.ErrIncorrectCredentials) {
			http.Error(w, "incorrect email or password", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, domain.ErrUserNotApproved) {
			http.Error(w, "account pending approval", http.StatusForbidden)
			return
		}

		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func closeBody(body io.ReadCloser) {
	err := body.Close()
	if err != nil {
		logger.Log.Error("error while closing request body", logger.Error(err))
	}
}
