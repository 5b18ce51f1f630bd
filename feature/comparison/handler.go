package comparison

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"

	"parcel-recon/core/logger"
	"parcel-recon/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for comparisons.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the comparison routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/comparison")
	group.Post("/run", h.HandleRun)
	group.Post("/export", h.HandleExport)
}

// HandleRun runs a comparison and returns the classified results as JSON.
// @Summary Run Comparison
// @Description Compare an MLS extract against a CAMA extract and return the classified result sets.
// @Tags comparison
// @Accept multipart/form-data
// @Produce json
// @Param mls formData file true "MLS extract (CSV)"
// @Param cama formData file false "CAMA extract (CSV); omit to use the configured database source"
// @Param tolerance formData number false "Numeric tolerance override"
// @Param skip_zero formData boolean false "Zero-skip override"
// @Param window_id formData string false "County session window ID for parcel links"
// @Success 200 {object} reconcile.Result "Comparison results"
// @Failure 400 {object} map[string]string "Unreadable upload or override"
// @Failure 422 {object} map[string]string "Key column missing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /comparison/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mlsData, camaData, ov, err := parseRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.service.Run(c.Context(), mlsData, camaData, ov)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(res)
}

// HandleExport runs a comparison and returns the ZIP report bundle.
// @Summary Export Comparison Reports
// @Description Compare the two extracts and return a ZIP archive of date-stamped CSV reports.
// @Tags comparison
// @Accept multipart/form-data
// @Produce application/zip
// @Param mls formData file true "MLS extract (CSV)"
// @Param cama formData file false "CAMA extract (CSV); omit to use the configured database source"
// @Param tolerance formData number false "Numeric tolerance override"
// @Param skip_zero formData boolean false "Zero-skip override"
// @Param window_id formData string false "County session window ID for parcel links"
// @Success 200 {file} file "Report bundle"
// @Failure 400 {object} map[string]string "Unreadable upload or override"
// @Failure 422 {object} map[string]string "Key column missing"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /comparison/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	mlsData, camaData, ov, err := parseRequest(c)
	if err != nil {
		return badRequest(c, err)
	}

	name, data, err := h.service.Export(c.Context(), mlsData, camaData, ov)
	if err != nil {
		return h.fail(c, l, err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, reconcile.ErrKeyColumnMissing):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidUpload), errors.Is(err, ErrNoCAMASource):
		status = fiber.StatusBadRequest
	}

	l.Error("Comparison failed", zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func parseRequest(c *fiber.Ctx) (mlsData, camaData []byte, ov Overrides, err error) {
	mlsFile, err := c.FormFile("mls")
	if err != nil {
		return nil, nil, ov, errors.New("missing mls file")
	}
	mlsData, err = readUpload(mlsFile)
	if err != nil {
		return nil, nil, ov, err
	}

	// The CAMA file is optional; absence means the database source.
	if camaFile, ferr := c.FormFile("cama"); ferr == nil {
		camaData, err = readUpload(camaFile)
		if err != nil {
			return nil, nil, ov, err
		}
	}

	ov, err = parseOverrides(c)
	return mlsData, camaData, ov, err
}

func parseOverrides(c *fiber.Ctx) (Overrides, error) {
	var ov Overrides

	if v := c.FormValue("tolerance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return ov, errors.New("invalid tolerance")
		}
		ov.Tolerance = &f
	}
	if v := c.FormValue("skip_zero"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ov, errors.New("invalid skip_zero")
		}
		ov.SkipZero = &b
	}
	if v := c.FormValue("window_id"); v != "" {
		ov.WindowID = &v
	}

	return ov, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("failed to open upload " + fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.New("failed to read upload " + fh.Filename)
	}
	return data, nil
}
