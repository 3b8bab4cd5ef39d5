// internal/server/server.go
package server

import (
	"encoding/json"
	"net/http"

	apierrors "activity-service/internal/common/errors"
	"activity-service/internal/common/events"
	"activity-service/internal/common/logger"
	"activity-service/internal/common/metrics"
	"activity-service/internal/common/notify"
	"activity-service/internal/common/observability"
	"activity-service/internal/registry"
)

// Config holds the handler-level settings.
type Config struct {
	// StaticIndexPath is where the root redirect points. The front-end
	// documents themselves are served elsewhere.
	StaticIndexPath string
}

// Server answers read queries against the registry and applies the two
// mutation operations.
type Server struct {
	config   *Config
	registry *registry.Registry
	events   *events.Publisher
	mailer   notify.Mailer
	obs      *observability.Observability
	logger   logger.Logger
}

func New(config *Config, reg *registry.Registry, pub *events.Publisher, mailer notify.Mailer, obs *observability.Observability, log logger.Logger) *Server {
	if config == nil {
		config = &Config{}
	}
	if config.StaticIndexPath == "" {
		config.StaticIndexPath = "/static/index.html"
	}
	if mailer == nil {
		mailer = notify.NopMailer{}
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Server{
		config:   config,
		registry: reg,
		events:   pub,
		mailer:   mailer,
		obs:      obs,
		logger:   log,
	}
}

// Routes returns the API route table. Wildcard path segments arrive
// percent-decoded from the mux, so "Chess%20Club" resolves to "Chess Club".
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /activities", s.handleList)
	mux.HandleFunc("POST /activities/{activity}/signup", s.handleSignup)
	mux.HandleFunc("POST /activities/{activity}/unregister", s.handleUnregister)
	return mux
}

// Handler returns the route table wrapped with the middleware chain.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.withLogging(s.withMetrics(s.Routes())))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.config.StaticIndexPath, http.StatusTemporaryRedirect)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.registry)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	// Only an absent parameter is rejected; "?email=" binds the empty
	// string and flows through unvalidated.
	if !r.URL.Query().Has("email") {
		s.writeError(w, apierrors.NewMissingEmail())
		return
	}
	email := r.URL.Query().Get("email")

	message, err := s.registry.Signup(name, email)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(activityLabel(name, err), outcomeLabel(err)).Inc()
		s.writeError(w, err)
		return
	}

	metrics.SignupsTotal.WithLabelValues(name, "success").Inc()
	metrics.ActivityParticipants.WithLabelValues(name).Set(float64(s.registry.ParticipantCount(name)))

	s.events.Publish(r.Context(), events.TypeSignup, name, email)
	if err := s.mailer.SendSignupConfirmation(r.Context(), email, name); err != nil {
		s.logger.Error("failed to send signup confirmation", map[string]interface{}{
			"activity": name,
			"email":    email,
			"error":    err.Error(),
		})
	}

	s.logger.Info("participant signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	s.writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("activity")
	if !r.URL.Query().Has("email") {
		s.writeError(w, apierrors.NewMissingEmail())
		return
	}
	email := r.URL.Query().Get("email")

	message, err := s.registry.Unregister(name, email)
	if err != nil {
		metrics.UnregistrationsTotal.WithLabelValues(activityLabel(name, err), outcomeLabel(err)).Inc()
		s.writeError(w, err)
		return
	}

	metrics.UnregistrationsTotal.WithLabelValues(name, "success").Inc()
	metrics.ActivityParticipants.WithLabelValues(name).Set(float64(s.registry.ParticipantCount(name)))

	s.events.Publish(r.Context(), events.TypeUnregister, name, email)

	s.logger.Info("participant unregistered", map[string]interface{}{
		"activity": name,
		"email":    email,
	})
	s.writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// writeError renders the FastAPI-style error body: {"detail": "..."}.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	apiErr := apierrors.Normalize(err)
	s.writeJSON(w, apiErr.Status, map[string]string{"detail": apiErr.Message})
}

// activityLabel bounds metric cardinality: lookups of unknown names
// would otherwise mint a new series per arbitrary request path.
func activityLabel(name string, err error) string {
	if apierrors.IsCode(err, apierrors.ErrCodeActivityNotFound) {
		return "unknown"
	}
	return name
}

func outcomeLabel(err error) string {
	switch apierrors.Normalize(err).Code {
	case apierrors.ErrCodeActivityNotFound:
		return "not_found"
	case apierrors.ErrCodeAlreadySignedUp:
		return "already_signed_up"
	case apierrors.ErrCodeNotRegistered:
		return "not_registered"
	default:
		return "error"
	}
}
