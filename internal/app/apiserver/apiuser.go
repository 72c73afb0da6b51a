package apiserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
)

func (s *server) ConfigureUserRouter() {
	router := s.router.PathPrefix("/api/user").Subrouter()
	router.HandleFunc("", s.HandleCreateUser()).Methods("POST")
	router.HandleFunc("/{id}", s.HandleGetUser()).Methods("GET")
}

func (s *server) HandleCreateUser() http.HandlerFunc {
	type request struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := &request{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			s.error(w, r, http.StatusBadRequest, err)
			return
		}

		u := &model.User{
			ID:   model.UserID(req.ID),
			Name: req.Name,
		}

		// Create replaces an existing user; report that as 200
		code := http.StatusCreated
		_, err := s.store.User().Find(u.ID)
		if err == nil {
			code = http.StatusOK
		} else if !errors.Is(err, store.ErrRecordNotFound) {
			s.error(w, r, http.StatusInternalServerError, err)
			return
		}

		if err := s.store.User().Create(u); err != nil {
			s.error(w, r, http.StatusUnprocessableEntity, err)
			return
		}

		s.respond(w, r, code, u)
	}
}

func (s *server) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUserID(r)
		if err != nil {
			s.error(w, r, http.StatusBadRequest, err)
			return
		}

		u, err := s.store.User().Find(id)
		if errors.Is(err, store.ErrRecordNotFound) {
			s.error(w, r, http.StatusNotFound, errNotFound)
			return
		}
		if err != nil {
			s.error(w, r, http.StatusInternalServerError, err)
			return
		}

		s.respond(w, r, http.StatusOK, u)
	}
}
