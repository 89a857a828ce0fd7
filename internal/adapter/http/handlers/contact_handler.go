package handlers

import (
	"net/http"

	request "studio_api/internal/adapter/http/dto/request"
	response "studio_api/internal/adapter/http/dto/response"
	"studio_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	usecase usecase.IContactUseCase
	log     *zap.Logger
}

func NewContactHandler(uc usecase.IContactUseCase, log *zap.Logger) *ContactHandler {
	return &ContactHandler{usecase: uc, log: log.Named("contact.handler")}
}

// Submit godoc
// @Summary      Contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      request.ContactRequest  true  "Contact form"
// @Success      201   {object}  response.InquiryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req request.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := invalidRequest()
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	inq, err := h.usecase.Submit(c.Request.Context(), req.Lead(), req.CaptchaToken, c.ClientIP())
	if err != nil {
		h.log.Info("contact rejected", zap.Error(err))
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInquiry(inq))
}
