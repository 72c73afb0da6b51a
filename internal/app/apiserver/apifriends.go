package apiserver

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/katelinlis/FriendState/internal/app/friendstate"
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/result"
	"github.com/katelinlis/FriendState/internal/app/store"
)

var errNotFound = errors.New("not found")

func (s *server) ConfigureFriendsRouter() {
	router := s.router.PathPrefix("/api/friends").Subrouter()
	router.HandleFunc("/{id}", s.HandleMarkAsFriend()).Methods("POST")       // add a friend, notify once
	router.HandleFunc("/{id}/status", s.HandleFriendStatus()).Methods("GET") // is {id} a friend of the current user
	router.HandleFunc("/{id}/summary", s.HandleSummary()).Methods("GET")     // {id} with friend profiles
}

// pathUserID reads and validates the {id} route variable.
func pathUserID(r *http.Request) (model.UserID, error) {
	id := model.UserID(mux.Vars(r)["id"])
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *server) HandleMarkAsFriend() http.HandlerFunc {
	type response struct {
		Created bool `json:"created"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userid, err := s.currentUser(r)
		if err != nil {
			s.error(w, r, http.StatusUnauthorized, err)
			return
		}

		friendID, err := pathUserID(r)
		if err != nil {
			s.error(w, r, http.StatusBadRequest, err)
			return
		}

		if _, err := s.store.User().Find(friendID); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				s.error(w, r, http.StatusNotFound, errNotFound)
				return
			}
			s.error(w, r, http.StatusInternalServerError, err)
			return
		}

		caller := friendstate.NewReportingCaller(
			friendstate.NewReportingUseCase(userid, s.store.Friends()),
			s.notifier,
			s.logger,
		)
		created, err := caller.AddFriendWithEvent(friendID)
		if errors.Is(err, model.ErrSelfFriendship) {
			s.error(w, r, http.StatusUnprocessableEntity, err)
			return
		}
		if err != nil {
			s.error(w, r, http.StatusInternalServerError, err)
			return
		}

		if created {
			s.respond(w, r, http.StatusCreated, response{Created: true})
			return
		}
		s.respond(w, r, http.StatusOK, response{Created: false})
	}
}

func (s *server) HandleFriendStatus() http.HandlerFunc {
	type response struct {
		Friend bool `json:"friend"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userid, err := s.currentUser(r)
		if err != nil {
			s.error(w, r, http.StatusUnauthorized, err)
			return
		}

		friendID, err := pathUserID(r)
		if err != nil {
			s.error(w, r, http.StatusBadRequest, err)
			return
		}

		ok, err := friendstate.NewReportingUseCase(userid, s.store.Friends()).IsFriend(friendID)
		if err != nil {
			s.error(w, r, http.StatusInternalServerError, err)
			return
		}

		s.respond(w, r, http.StatusOK, response{Friend: ok})
	}
}

func (s *server) HandleSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUserID(r)
		if err != nil {
			s.error(w, r, http.StatusBadRequest, err)
			return
		}

		res := friendstate.Summarize(s.store, id)
		if summary, ok := res.Value(); ok {
			s.respond(w, r, http.StatusOK, summary)
			return
		}

		kind, _ := res.ErrorType()
		s.logger.WithField("stage", kind).Warn("summary failed")
		if kind == result.ErrorStepA {
			s.error(w, r, http.StatusNotFound, errNotFound)
			return
		}
		s.error(w, r, http.StatusInternalServerError, errors.New("summary failed at "+kind.String()))
	}
}
