package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	embedded "github.com/goserg/matchsim"
	"github.com/goserg/matchsim/internal/config"
	"github.com/goserg/matchsim/internal/domain"
	"github.com/goserg/matchsim/internal/service"
	"github.com/goserg/matchsim/internal/web/webpath"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Server struct {
	simulations *service.SimulationService
	app         *fiber.App
	cfg         config.Server
	log         *logrus.Entry
}

func New(ss *service.SimulationService, cfg config.Server, l *logrus.Logger) (*Server, error) {
	server := Server{
		simulations: ss,
		cfg:         cfg,
		log:         l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("Percent", formatPercent)
	engine.AddFunc("Count", formatCount)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Get(webpath.Home, server.handleMain)
	app.Post(webpath.Simulate, server.handleSimulatePost)
	app.Get(webpath.Simulation, server.handleSimulation)

	app.Get(webpath.ApiSimulations, server.handleApiList)
	app.Post(webpath.ApiSimulations, server.handleApiCreate)
	app.Get(webpath.ApiGetSimulation, server.handleApiGet)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	form := simulateRequest{
		AbilityA:    0.6,
		AbilityB:    0.5,
		Simulations: 1000,
		BestOf:      s.cfg.Simulation.BestOf,
	}
	return s.renderMain(ctx, newData("Match simulator"), form)
}

func (s *Server) renderMain(ctx *fiber.Ctx, d data, form simulateRequest) error {
	d = d.With("Reports", s.simulations.ListReports()).With("Form", form)
	return ctx.Render("index", d.Map(), "layouts/main")
}

func (s *Server) handleSimulatePost(ctx *fiber.Ctx) error {
	req, err := parseSimulateForm(ctx.FormValue)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return s.renderMain(ctx, newData("Match simulator").WithErrors(err), req)
	}
	report, err := s.simulate(req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			ctx.Status(fiber.StatusBadRequest)
			return s.renderMain(ctx, newData("Match simulator").WithErrors(err), req)
		}
		return err
	}
	return ctx.Redirect(webpath.SimulationPath(report.ID.String()))
}

func (s *Server) handleSimulation(ctx *fiber.Ctx) error {
	report, err := s.getReport(ctx)
	if err != nil {
		return err
	}
	d := newData("Simulation " + report.ID.String()).With("Report", report)
	return ctx.Render("report", d.Map(), "layouts/main")
}

func (s *Server) handleApiList(ctx *fiber.Ctx) error {
	return ctx.JSON(s.simulations.ListReports())
}

func (s *Server) handleApiCreate(ctx *fiber.Ctx) error {
	var req simulateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	if err := req.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
	}
	report, err := s.simulate(req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
		}
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(report)
}

func (s *Server) handleApiGet(ctx *fiber.Ctx) error {
	report, err := s.getReport(ctx)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(errorResponse{Errors: []string{fe.Message}})
		}
		return err
	}
	return ctx.JSON(report)
}

func (s *Server) getReport(ctx *fiber.Ctx) (domain.Report, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return domain.Report{}, fiber.NewError(fiber.StatusBadRequest, "invalid simulation id")
	}
	report, err := s.simulations.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return domain.Report{}, fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return domain.Report{}, err
	}
	return report, nil
}

func (s *Server) simulate(req simulateRequest) (domain.Report, error) {
	p, err := s.simulations.NewParams(req.AbilityA, req.AbilityB, req.Simulations, req.BestOf, req.Seed)
	if err != nil {
		return domain.Report{}, err
	}
	return s.simulations.Simulate(p)
}

var printer = message.NewPrinter(language.English)

func formatDate(t time.Time) string {
	return t.Format("02.01.2006 15:04:05")
}

func formatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

func formatCount(v int) string {
	return printer.Sprintf("%d", v)
}
