// Package api exposes the use cases over a thin JSON HTTP surface.
// Request shapes are validated before any use case runs; the use cases
// themselves only ever see well-formed input.
package api

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jaevor/go-nanoid"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"crafty/errors"
	"crafty/usecases"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UseCases bundles everything the HTTP surface maps onto.
type UseCases struct {
	PostMessage  *usecases.PostMessageUseCase
	EditMessage  *usecases.EditMessageUseCase
	ViewTimeline *usecases.ViewTimelineUseCase
	ViewWall     *usecases.ViewWallUseCase
	FollowUser   *usecases.FollowUserUseCase
	CreateUser   *usecases.CreateUserUseCase
}

type Handler struct {
	log          *slog.Logger
	validate     *validator.Validate
	useCases     UseCases
	newMessageID func() string
}

// NewHandler builds the routed HTTP handler. Message ids for POST
// /messages are generated server side with nanoid.
func NewHandler(log *slog.Logger, useCases UseCases) (http.Handler, error) {
	newMessageID, err := nanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("nanoid generator: %w", err)
	}

	h := &Handler{
		log:          log,
		validate:     validator.New(),
		useCases:     useCases,
		newMessageID: newMessageID,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", instrument("/users", h.createUser))
	mux.HandleFunc("POST /users/{user}/follow", instrument("/users/{user}/follow", h.followUser))
	mux.HandleFunc("GET /users/{user}/timeline", instrument("/users/{user}/timeline", h.getTimeline))
	mux.HandleFunc("GET /users/{user}/wall", instrument("/users/{user}/wall", h.getWall))
	mux.HandleFunc("POST /messages", instrument("/messages", h.postMessage))
	mux.HandleFunc("PUT /messages/{messageId}", instrument("/messages/{messageId}", h.editMessage))
	mux.HandleFunc("GET /health", h.health)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux, nil
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.useCases.CreateUser.Handle(r.Context(), usecases.CreateUserCommand{Name: req.Name}); err != nil {
		h.writeUseCaseError(w, "create user", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, messageResponse{
		Message: fmt.Sprintf("User '%s' created successfully", req.Name),
	})
}

func (h *Handler) followUser(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")
	var req followUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.useCases.FollowUser.Handle(r.Context(), usecases.FollowUserCommand{
		User:         user,
		UserToFollow: req.UserToFollow,
	})
	if err != nil {
		h.writeUseCaseError(w, "follow user", err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("%s is now following %s", user, req.UserToFollow),
	})
}

func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.useCases.ViewTimeline.Handle(r.Context(), r.PathValue("user"))
	if err != nil {
		h.writeUseCaseError(w, "view timeline", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"timeline": timeline})
}

func (h *Handler) getWall(w http.ResponseWriter, r *http.Request) {
	wall, err := h.useCases.ViewWall.Handle(r.Context(), r.PathValue("user"))
	if err != nil {
		h.writeUseCaseError(w, "view wall", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"wall": wall})
}

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.useCases.PostMessage.Handle(r.Context(), usecases.PostMessageCommand{
		ID:     h.newMessageID(),
		Author: req.Author,
		Text:   req.Text,
	})
	if err != nil {
		h.writeUseCaseError(w, "post message", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, messageResponse{Message: "Message posted successfully"})
}

func (h *Handler) editMessage(w http.ResponseWriter, r *http.Request) {
	messageID := r.PathValue("messageId")
	var req editMessageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	err := h.useCases.EditMessage.Handle(r.Context(), usecases.EditMessageCommand{
		MessageID: messageID,
		Text:      req.Text,
	})
	if err != nil {
		h.writeUseCaseError(w, "edit message", err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Message edited successfully"})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate parses the JSON body and checks the request shape.
// Reports false after writing a 400 when either step fails.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) writeUseCaseError(w http.ResponseWriter, operation string, err error) {
	h.log.Error(operation+" failed", "error", err)
	switch {
	case stderrors.Is(err, errors.ErrMessageNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case stderrors.Is(err, errors.ErrEmptyMessage):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to " + operation})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("writing response failed", "error", err)
	}
}
