package hiring

import (
	"errors"
	"io"
	"net/http"

	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("hiring.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hiring.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("hiring request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// bindPatch treats an empty body as an empty patch.
func bindPatch(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperror.MapValidationError(err)
	}
	return nil
}

func writeList[T any](c *gin.Context, items []T) {
	page, pageSize := response.PageParams(c)
	paged, meta := response.Paginate(items, page, pageSize)
	response.Success(c, http.StatusOK, paged, &meta)
}

func (h *Handler) CreatePosting(c *gin.Context) {
	var req CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreatePosting(c.Request.Context(), c.GetString("tenant_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPostings(c *gin.Context) {
	resp, err := h.service.GetPostings(c.Request.Context(), c.GetString("tenant_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeList(c, resp)
}

func (h *Handler) GetPostingById(c *gin.Context) {
	resp, err := h.service.GetPostingByID(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdatePosting(c *gin.Context) {
	var req UpdatePostingRequest
	if err := bindPatch(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.UpdatePosting(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateCandidate(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateCandidate(c.Request.Context(), c.GetString("tenant_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetCandidates(c *gin.Context) {
	resp, err := h.service.GetCandidates(c.Request.Context(), c.GetString("tenant_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeList(c, resp)
}

func (h *Handler) GetCandidateById(c *gin.Context) {
	resp, err := h.service.GetCandidateByID(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateApplication(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateApplication(c.Request.Context(), c.GetString("tenant_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetApplications(c *gin.Context) {
	resp, err := h.service.GetApplications(c.Request.Context(), c.GetString("tenant_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	writeList(c, resp)
}

func (h *Handler) GetApplicationById(c *gin.Context) {
	resp, err := h.service.GetApplicationByID(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateApplication(c *gin.Context) {
	var req UpdateApplicationRequest
	if err := bindPatch(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.UpdateApplication(c.Request.Context(), c.GetString("tenant_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
