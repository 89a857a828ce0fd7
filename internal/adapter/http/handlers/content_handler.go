package handlers

import (
	"errors"
	"net/http"

	"studio_api/internal/usecase"
	"studio_api/pkg"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	usecase usecase.IContentUseCase
}

func NewContentHandler(uc usecase.IContentUseCase) *ContentHandler {
	return &ContentHandler{usecase: uc}
}

// GetSection godoc
// @Summary      Site content section
// @Tags         content
// @Produce      json
// @Param        section  path  string  true  "services, faq, testimonials or portfolio"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /content/{section} [get]
func (h *ContentHandler) GetSection(c *gin.Context) {
	items, err := h.usecase.Section(c.Request.Context(), c.Param("section"))
	if err != nil {
		var appErr *pkg.AppError
		if errors.Is(err, usecase.ErrUnknownContentSection) {
			appErr = pkg.NewDomainErrorSimple("CONTENT_NOT_FOUND", "Content section not found", http.StatusNotFound)
		} else {
			appErr = pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}
