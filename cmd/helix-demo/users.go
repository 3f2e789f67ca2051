package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/godamri/helix-db/database"
	"github.com/godamri/helix-db/http/filter"
	"github.com/godamri/helix-db/http/response"
)

type user struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type userHandler struct {
	db     *database.Service
	filter *filter.Filter
}

func newUserHandler(db *database.Service, f *filter.Filter) *userHandler {
	return &userHandler{db: db, filter: f}
}

func (h *userHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users", h.filter.Wrap(h.create))
	r.Get("/users/{id}", h.filter.Wrap(h.get))
}

func (h *userHandler) create(w http.ResponseWriter, r *http.Request) error {
	var in user
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return response.NewStatusError(http.StatusBadRequest, "invalid request body", err)
	}

	err := h.db.Client.QueryRowContext(r.Context(),
		`INSERT INTO users (email) VALUES ($1) RETURNING id`, in.Email,
	).Scan(&in.ID)
	if err != nil {
		return database.Translate(err)
	}

	response.JSON(w, r, http.StatusCreated, in)
	return nil
}

func (h *userHandler) get(w http.ResponseWriter, r *http.Request) error {
	out := user{ID: chi.URLParam(r, "id")}
	err := h.db.Client.QueryRowContext(r.Context(),
		`SELECT email FROM users WHERE id = $1`, out.ID,
	).Scan(&out.Email)
	if err != nil {
		return database.Translate(err)
	}

	response.JSON(w, r, http.StatusOK, out)
	return nil
}
