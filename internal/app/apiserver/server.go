package apiserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/katelinlis/FriendState/internal/app/friendstate"
	"github.com/katelinlis/FriendState/internal/app/model"
	"github.com/katelinlis/FriendState/internal/app/store"
	"github.com/sirupsen/logrus"
)

const (
	ctxKeyRequestID ctxKey = iota
)

type ctxKey int8

var (
	errTokenMissing = errors.New("token is missing")
	errTokenInvalid = errors.New("error parsing token")
)

type server struct {
	router     *mux.Router
	logger     *logrus.Logger
	store      store.Store
	notifier   friendstate.Notifier
	jwtsignkey string
}

func newServer(store store.Store, config *Config, logger *logrus.Logger, notifier friendstate.Notifier) *server {
	s := &server{
		router:     mux.NewRouter(),
		logger:     logger,
		store:      store,
		notifier:   notifier,
		jwtsignkey: config.JwtSignKey,
	}
	s.configureRouter()

	return s
}

// InitJWT signs a token identifying userID.
func (s *server) InitJWT(userID model.UserID) (string, error) {
	claims := jwt.MapClaims{
		"userid": userID.String(),
		"exp":    time.Now().Add(time.Hour * 6).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtsignkey))
}

// currentUser reads the user id from the bearer token.
func (s *server) currentUser(r *http.Request) (model.UserID, error) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return "", errTokenMissing
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtsignkey), nil
	})
	if err != nil || !parsedToken.Valid {
		return "", errTokenInvalid
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return "", errTokenInvalid
	}
	userid, ok := claims["userid"].(string)
	if !ok {
		return "", errTokenInvalid
	}

	id := model.UserID(userid)
	if err := id.Validate(); err != nil {
		return "", errTokenInvalid
	}

	return id, nil
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	s.router.ServeHTTP(w, r)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "DELETE, POST, GET, PUT, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Access-Control-Allow-Headers, Authorization, X-Requested-With")
}

func (s *server) configureRouter() {
	s.router.Use(s.setRequestID)
	s.router.Use(s.logRequest)

	s.router.Methods("OPTIONS").HandlerFunc(
		func(rw http.ResponseWriter, r *http.Request) {
			rw.WriteHeader(http.StatusOK)
		})

	s.ConfigureFriendsRouter()
	s.ConfigureUserRouter()
}

func (s *server) setRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, id)))
	})
}

type responseWriter struct {
	http.ResponseWriter
	code int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.code = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (s *server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.WithFields(logrus.Fields{
			"remote_addr": r.RemoteAddr,
			"request_id":  r.Context().Value(ctxKeyRequestID),
		})
		logger.Debugf("started %s %s", r.Method, r.RequestURI)

		start := time.Now()
		rw := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(rw, r)

		logger.WithFields(logrus.Fields{
			"code":     rw.code,
			"duration": time.Since(start),
		}).Debugf("completed %s %s", r.Method, r.RequestURI)
	})
}

func (s *server) error(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.respond(w, r, code, map[string]string{"error": err.Error()})
}

func (s *server) respond(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
