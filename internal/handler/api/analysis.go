package api

import (
	"errors"
	"net/http"
	"time"

	models "StockScope/internal/domain/models"
	domrepo "StockScope/internal/domain/repository"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler implements Echo-based HTTP handlers following Clean Architecture.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
}

func NewAnalysisHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, analyzer: analyzer}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analysis/:ticker", h.Analyze)
	g.POST("/analysis/batch", h.AnalyzeBatch)
	g.GET("/history/:ticker", h.History)
	g.GET("/cache/stats", h.CacheStats)
	g.DELETE("/cache", h.ClearCache)
	g.DELETE("/cache/:ticker", h.ClearTicker)
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), req.Ticker, req.Period)
	if err != nil {
		h.logger.Error("analyze usecase error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	h.logger.Debug("analysis served",
		xlogger.String("ticker", req.Ticker),
		xlogger.Duration("elapsed", time.Since(start)))
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) AnalyzeBatch(c echo.Context) error {
	req := &models.BatchAnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	items := h.analyzer.AnalyzeBatch(c.Request().Context(), req.Tickers, req.Period)
	return xhttp.SuccessResponse(c, items)
}

func (h *AnalysisHandler) History(c echo.Context) error {
	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	records, err := h.analyzer.History(c.Request().Context(), req.Ticker, req.Limit)
	if err != nil {
		h.logger.Error("history usecase error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.ListResponse(c, records, int64(len(records)))
}

func (h *AnalysisHandler) CacheStats(c echo.Context) error {
	stats, err := h.analyzer.CacheStats(c.Request().Context())
	if err != nil {
		h.logger.Error("cache stats error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.SuccessResponse(c, stats)
}

func (h *AnalysisHandler) ClearCache(c echo.Context) error {
	if err := h.analyzer.ClearCache(c.Request().Context()); err != nil {
		h.logger.Error("cache clear error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.NoContentResponse(c)
}

func (h *AnalysisHandler) ClearTicker(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	if err := h.analyzer.ClearTicker(c.Request().Context(), req.Ticker); err != nil {
		h.logger.Error("cache clear ticker error",
			xlogger.String("ticker", req.Ticker),
			xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapDomainError(err))
	}
	return xhttp.NoContentResponse(c)
}

// mapDomainError translates domain sentinels into transport errors.
func mapDomainError(err error) error {
	if errors.Is(err, domrepo.ErrDataUnavailable) {
		return xhttp.NewAppError("ERR_DATA_UNAVAILABLE", "", err.Error(), http.StatusBadGateway)
	}
	return err
}
