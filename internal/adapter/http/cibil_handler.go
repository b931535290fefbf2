package http

import (
	"net/http"
	"net/url"

	"cibil-mock-backend/internal/usecase/cibil"

	"github.com/labstack/echo/v4"
)

type CibilHandler struct{ uc *cibil.Usecase }

func NewCibilHandler(uc *cibil.Usecase) *CibilHandler { return &CibilHandler{uc: uc} }

// Envelope wraps every successful CIBIL response.
type Envelope struct {
	Success    bool   `json:"success"`
	BorrowerID string `json:"borrowerId"`
	Data       any    `json:"data"`
}

// borrowerID returns the decoded path id. Ids are opaque: any value,
// even an empty one, gets a synthesized set.
func borrowerID(c echo.Context) string {
	raw := c.Param("borrower_id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func (h *CibilHandler) GetReports(c echo.Context) error {
	id := borrowerID(c)
	reports := h.uc.GetReports(c.Request().Context(), id)
	return c.JSON(http.StatusOK, Envelope{Success: true, BorrowerID: id, Data: reports})
}

func (h *CibilHandler) GetSummary(c echo.Context) error {
	id := borrowerID(c)
	summary := h.uc.GetSummary(c.Request().Context(), id)
	return c.JSON(http.StatusOK, Envelope{Success: true, BorrowerID: id, Data: summary})
}
