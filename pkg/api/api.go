// Package api implements the HTTP evaluation API.
package api

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/zeeshanok/epic-calc/pkg/expr"
	"github.com/zeeshanok/epic-calc/pkg/report"
)

// Server is the HTTP API server for the calculator.
type Server struct {
	app *fiber.App
}

// New creates a new API server.
func New() *Server {
	srv := &Server{}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Get("/healthz", srv.healthz)
	app.Get("/v1/evaluate", srv.evaluateQuery)
	app.Post("/v1/evaluate", srv.evaluateBody)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app (useful for testing).
func (s *Server) App() *fiber.App {
	return s.app
}

type evaluateRequest struct {
	Expression *string `json:"expression"`
}

func (s *Server) healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) evaluateQuery(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("expression") {
		return invalidArgument(c, "expression query parameter is required")
	}
	return s.evaluate(c, c.Query("expression"))
}

func (s *Server) evaluateBody(c *fiber.Ctx) error {
	var req evaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, fmt.Sprintf("invalid request body: %v", err))
	}
	if req.Expression == nil {
		return invalidArgument(c, "expression is required")
	}
	return s.evaluate(c, *req.Expression)
}

func (s *Server) evaluate(c *fiber.Ctx, raw string) error {
	if utf8.RuneCountInString(raw) > expr.MaxExpressionLength {
		return invalidArgument(c, fmt.Sprintf("expression exceeds maximum length of %d characters", expr.MaxExpressionLength))
	}
	return c.JSON(report.New(raw))
}

func invalidArgument(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    fiber.StatusBadRequest,
			"message": msg,
			"status":  "INVALID_ARGUMENT",
		},
	})
}
