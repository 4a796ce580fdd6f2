package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/scaninsight/internal/config"
	"github.com/locvowork/scaninsight/internal/loader"
	"github.com/locvowork/scaninsight/internal/logger"
	"github.com/locvowork/scaninsight/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func responseError(c echo.Context, code int, msg string, err error) error {
	resp := errorResponse{Message: msg}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(code, resp)
}

// ReportHandler exposes report generation over HTTP: post the scan JSON
// envelope, get the workbook back as an attachment.
type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// GenerateHandler handles POST /reports. Query parameters: customer
// (required), lenient (optional, "true" skips malformed records).
func (h *ReportHandler) GenerateHandler(c echo.Context) error {
	customer := c.QueryParam("customer")
	if customer == "" {
		return responseError(c, http.StatusBadRequest, "Missing customer query parameter", nil)
	}
	lenient := c.QueryParam("lenient") == "true"

	records, err := loader.Read(c.Request().Body)
	if err != nil {
		return responseError(c, http.StatusBadRequest, "Failed to decode scan data", err)
	}

	registry := report.NewLanguageRegistry(nil)
	svc := report.NewService(
		customer,
		config.DefaultEnvConfig.REPORT_COMPANY,
		config.DefaultEnvConfig.REPORT_AUTHOR,
		registry,
		logger.Logger(),
	)

	excelBytes, err := svc.GenerateBytes(c.Request().Context(), records, report.WithLenient(lenient))
	if err != nil {
		if errors.Is(err, report.ErrMalformedRecord) {
			return responseError(c, http.StatusUnprocessableEntity, "Scan data contains a malformed record", err)
		}
		return responseError(c, http.StatusInternalServerError, "Failed to generate report", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_scans.xlsx"`, customer))
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(excelBytes)))

	_, err = c.Response().Write(excelBytes)
	return err
}

// HealthHandler handles GET /healthz.
func (h *ReportHandler) HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
