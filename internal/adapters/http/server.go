package http

import (
	"errors"
	"strconv"
	"strings"
	"time"

	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/restartfu/hwprofile/internal/app"
	"github.com/restartfu/hwprofile/internal/cpu"
	"github.com/restartfu/hwprofile/internal/domain"
	"github.com/restartfu/hwprofile/internal/observability"
	"go.uber.org/zap"
)

type Server struct {
	service *app.Service
	logger  *zap.Logger
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type brandResponse struct {
	Vendor     string `json:"vendor"`
	Model      string `json:"model"`
	Generation string `json:"generation"`
}

type memoryResponse struct {
	Bytes uint64 `json:"bytes"`
	GB    uint64 `json:"gb"`
}

type profileResponse struct {
	Profile  domain.HardwareProfile `json:"profile"`
	Warnings string                 `json:"warnings,omitempty"`
}

func NewServer(service *app.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		service: service,
		logger:  logger,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/profile", s.GetProfile)
	e.GET("/cpu/parse", s.GetCPUParse)
	e.GET("/memory/normalize", s.GetMemoryNormalize)
}

func (s *Server) GetHealth(ctx echo.Context) error {
	health := s.service.Health()
	return ctx.JSON(nethttp.StatusOK, healthResponse{
		Status: health.Status,
		Time:   health.Time,
	})
}

// GetProfile detects the hardware on every request. Failed probes are
// reported as warnings next to the completed profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	profile, err := s.service.Detect(ctx.Request().Context())
	response := profileResponse{Profile: profile}
	if err != nil {
		if ctxErr := ctx.Request().Context().Err(); ctxErr != nil {
			return ctx.JSON(nethttp.StatusServiceUnavailable, errorResponse{Error: ctxErr.Error()})
		}
		s.logger.Warn("profile detection incomplete", zap.Error(err))
		response.Warnings = err.Error()
	}
	return ctx.JSON(nethttp.StatusOK, response)
}

func (s *Server) GetCPUParse(ctx echo.Context) error {
	brand, err := s.service.ParseBrand(ctx.QueryParam("brand"))
	if err != nil {
		if errors.Is(err, cpu.ErrMalformedBrandString) {
			return ctx.JSON(nethttp.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		observability.CaptureError(err, map[string]string{
			"component": "http",
			"handler":   "cpu_parse",
		}, nil)
		return ctx.JSON(nethttp.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
	return ctx.JSON(nethttp.StatusOK, brandResponse{
		Vendor:     brand.Vendor,
		Model:      brand.Model,
		Generation: brand.Generation(),
	})
}

func (s *Server) GetMemoryNormalize(ctx echo.Context) error {
	bytes, err := strconv.ParseUint(strings.TrimSpace(ctx.QueryParam("bytes")), 10, 64)
	if err != nil {
		return ctx.JSON(nethttp.StatusBadRequest, errorResponse{Error: errInvalidByteCount.Error()})
	}
	return ctx.JSON(nethttp.StatusOK, memoryResponse{
		Bytes: bytes,
		GB:    s.service.NormalizeMemory(bytes),
	})
}

var errInvalidByteCount = errors.New("bytes must be a non-negative integer")
