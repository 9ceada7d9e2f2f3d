// Package server exposes a JSH memory over HTTP.
//
// The URL path addresses a value below "root": GET /books/book1 reads
// root.books.book1. The verb picks the operation and the opc query
// parameter the representation:
//
//	GET     json|text  read the value
//	POST    json|text  evaluate the body as JSH with "this" bound to the value
//	PUT     json|text  replace the value with the body
//	PATCH   json|deep  merge the JSON body into the value
//	DELETE  json|text  remove the value and return it
//
// Requests are served one at a time. After every mutating request the root
// document is written to the configured store.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/sandrolain/gojsh/pkg/evaluator"
	"github.com/sandrolain/gojsh/pkg/store"
	"github.com/sandrolain/gojsh/pkg/types"
)

// RootKey is the memory key holding the served document.
const RootKey = "root"

// validOptions lists the accepted opc values per method.
var validOptions = map[string][]string{
	http.MethodGet:    {"json", "text"},
	http.MethodPost:   {"json", "text"},
	http.MethodPut:    {"json", "text"},
	http.MethodPatch:  {"json", "deep"},
	http.MethodDelete: {"json", "text"},
}

// Server serves one evaluator's memory.
type Server struct {
	mu     sync.Mutex // serializes requests
	eval   *evaluator.Evaluator
	store  store.Store
	logger *slog.Logger
	echo   *echo.Echo
}

// Option configures a Server.
type Option func(*Server)

// WithStore persists the root document to st after every mutation.
func WithStore(st store.Store) Option {
	return func(s *Server) {
		s.store = st
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server for e.
func New(e *evaluator.Evaluator, opts ...Option) *Server {
	s := &Server{
		eval:   e,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.JSONSerializer = jsonSerializer{}
	s.echo.Use(s.logRequests)
	s.echo.Any("/", s.handle)
	s.echo.Any("/*", s.handle)
	return s
}

// LoadDocument reads the document from the store, creating an empty one
// when nothing is stored, and places it under RootKey. Without a store
// the document starts empty.
func (s *Server) LoadDocument() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc types.Value = types.NewObject()
	if s.store != nil {
		var err error
		if doc, err = store.LoadOrInit(s.store); err != nil {
			return err
		}
	}
	return s.eval.Memory().Set([]string{RootKey}, doc)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr and serves until Shutdown.
func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the listener and waits for running requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func validOption(method, opc string) bool {
	for _, o := range validOptions[method] {
		if o == opc {
			return true
		}
	}
	return false
}

// requestPath maps the URL path to memory segments below RootKey.
func requestPath(urlPath string) []string {
	segs := []string{RootKey}
	for _, part := range strings.Split(urlPath, "/") {
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// opc returns the lower-cased opc query parameter, json by default.
func opc(c echo.Context) string {
	if o := c.QueryParam("opc"); o != "" {
		return strings.ToLower(o)
	}
	return "json"
}
