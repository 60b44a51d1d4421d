package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/internal/scheduling"
	"github.com/nikmy/meowslots/pkg/errors"
	"github.com/nikmy/meowslots/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, scheduler Scheduler) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		StreamRequestBody:       true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodHead, fiber.MethodPost, fiber.MethodPut},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).
			JSON(map[string]string{"error": "internal failure"})
	}

	s := &server{
		scheduler: scheduler,
		http:      fiber.New(fiberCfg),
		addr:      cfg.HTTP.Addr,
		log:       serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	scheduler Scheduler
	http      *fiber.App
	addr      string
	log       logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Post("/api/v1/interviewers", s.handleCreateInterviewer)
	s.http.Post("/api/v1/interviewers/:id/availability", s.handleSetAvailability)
	s.http.Get("/api/slots", s.handleGetSlots)
	s.http.Post("/api/slots/:id/book", s.handleBookSlot)
	s.http.Put("/api/slots/:id", s.handleUpdateSlot)
}

func (s *server) handleCreateInterviewer(c *fiber.Ctx) error {
	var interviewer models.Interviewer

	err := c.BodyParser(&interviewer)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal interviewer payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	created, err := s.scheduler.CreateInterviewer(c.Context(), interviewer)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(created)
}

func (s *server) handleSetAvailability(c *fiber.Ctx) error {
	var windows []models.Window

	err := c.BodyParser(&windows)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal availability payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	_, err = s.scheduler.SetAvailability(c.Context(), c.Params("id"), windows)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).Send(nil)
}

func (s *server) handleGetSlots(c *fiber.Ctx) error {
	from, err := s.getInstantOrErr(c, "start")
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, "start and end must be unix milli instants")
	}

	to, err := s.getInstantOrErr(c, "end")
	if err != nil {
		s.log.Warn(err)
		return s.sendError(c, http.StatusBadRequest, "start and end must be unix milli instants")
	}

	slots, err := s.scheduler.SlotsWithin(c.Context(), from, to)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	if slots == nil {
		slots = []models.Slot{}
	}

	return c.Status(http.StatusOK).JSON(slots)
}

func (s *server) handleBookSlot(c *fiber.Ctx) error {
	var req struct {
		CandidateName string `json:"candidateName"`
	}

	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal booking payload"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	if req.CandidateName == "" {
		return s.sendError(c, http.StatusBadRequest, "missing required field \"candidateName\"")
	}

	booked, err := s.scheduler.Book(c.Context(), c.Params("id"), req.CandidateName)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(booked)
}

func (s *server) handleUpdateSlot(c *fiber.Ctx) error {
	var patch scheduling.SlotPatch

	err := c.BodyParser(&patch)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal slot patch"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	updated, err := s.scheduler.PatchSlot(c.Context(), c.Params("id"), patch)
	if err != nil {
		return s.sendDomainError(c, err)
	}

	return c.Status(http.StatusOK).JSON(updated)
}

// sendDomainError maps domain failures to responses; anything unexpected
// falls through to the fiber ErrorHandler and becomes a 500.
func (s *server) sendDomainError(c *fiber.Ctx, err error) error {
	status := domainStatus(err)
	if status == 0 {
		return err
	}

	return s.sendError(c, status, err.Error())
}

func domainStatus(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrInterviewerNotFound),
		errors.Is(err, scheduling.ErrSlotNotFound):
		return http.StatusNotFound

	case errors.Is(err, scheduling.ErrSlotAlreadyBooked),
		errors.Is(err, scheduling.ErrWeeklyLimitExceeded),
		errors.Is(err, scheduling.ErrStaleSlotVersion):
		return http.StatusConflict

	case scheduling.IsValidation(err):
		return http.StatusBadRequest
	}

	return 0
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"error": msg})
}

func (s *server) getInstantOrErr(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Query(name, "")
	if raw == "" {
		return 0, errors.Errorf("got empty %q param", name)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Errorf("got malformed %q param %s", name, raw)
	}

	return v, nil
}
