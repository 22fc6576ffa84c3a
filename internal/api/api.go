package api

import (
	"context"
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
	"github.com/ameypusalkar001/EPMATest/internal/form"
)

// @title       Employee Registration
// @version     1.0
// @description Employee registration form with in-memory, per-process submissions.
//
// @BasePath  /
// @schemes   http

type FormSession interface {
	SetField(name, value string) error
	Draft() dto.EmployeeRecord
	Cancel()
	Submit(ctx context.Context, edits ...form.Edit) (int, dto.EmployeeRecord, error)
	Records(ctx context.Context) ([]dto.EmployeeRecord, error)
	Record(ctx context.Context, index int) (*dto.EmployeeRecord, error)
	Submitted(ctx context.Context) (int, error)
}

// PageText holds the operator-configurable texts of the form page.
type PageText struct {
	Title    string
	Subtitle string
	// IntroHTML is sanitized before it reaches the page.
	IntroHTML string
}

type ServiceDeps struct {
	Port int

	Session FormSession
	Text    PageText
}

type Service struct {
	r      *router.Router
	server *fasthttp.Server
	port   int

	session FormSession
	views   *views
}

func NewService(d ServiceDeps) (*Service, error) {
	v, err := newViews(d.Text)
	if err != nil {
		return nil, fmt.Errorf("newViews: %w", err)
	}

	s := &Service{
		r:       router.New(),
		port:    d.Port,
		session: d.Session,
		views:   v,
	}

	s.mountRoutes()

	s.server = &fasthttp.Server{
		Handler:            RecoveryMiddleware(LoggingMiddleware(s.r.Handler)),
		Name:               "employee-registration",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 1 << 20, // 1 MiB
	}

	return s, nil
}

func (s *Service) Start(ctx context.Context) error {
	log.Info().Int("port", s.port).Msg("Starting employee registration form")

	emergencyShutdown := make(chan error, 1)
	go func() {
		emergencyShutdown <- s.server.ListenAndServe(fmt.Sprintf(":%d", s.port))
	}()

	select {
	case <-ctx.Done():
		return s.server.Shutdown()
	case e := <-emergencyShutdown:
		return e
	}
}

func (s *Service) mountRoutes() {
	// Form
	s.r.GET("/", s.formPage)
	s.r.POST("/draft", s.setDraftField)
	s.r.POST("/submit", s.submitForm)
	s.r.POST("/reset", s.resetForm)

	// Records
	s.r.GET("/records/{number}", s.recordPage)

	// JSON
	s.r.GET("/api/draft", s.getDraft)
	s.r.GET("/api/records", s.listRecords)

	// Health
	s.r.GET("/health", s.healthHandler)
}
