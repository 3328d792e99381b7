package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/op/go-logging"

	"scmock/catalog"
	"scmock/common"
)

var log = logging.MustGetLogger("server")

// Server hosts the mock API endpoint. Every operation is a POST to "/" with
// the action named by the X-Amz-Target header, the way the AWS JSON protocol
// works.
type Server struct {
	config  common.Config
	catalog *catalog.Factory
	router  chi.Router
}

// New creates a server over the context's collaborators
func New(ctx *common.Context) *Server {
	server := &Server{
		config:  ctx.Config,
		catalog: catalog.NewFactory(ctx),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Get("/ping", server.ping)
	router.Post("/", server.dispatch)
	server.router = router

	return server
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on the configured port
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.config.Server.Port)
	log.Infof("Catalog mock listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("%s %s target:%s", r.Method, r.URL.Path, r.Header.Get(amzTargetHeader))
		next.ServeHTTP(w, r)
	})
}
