package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"igclean/internal/service"
	"igclean/pkg/igclean"
)

type CleanHandler struct {
	service service.CleanService
}

type cleanRequest struct {
	URL string `json:"url" query:"url"`
}

type cleanTextRequest struct {
	Text string `json:"text"`
}

type cleanBatchRequest struct {
	URLs []string `json:"urls"`
}

type cleanResponse struct {
	CleanURL    string `json:"cleanUrl"`
	Removed     string `json:"removed"`
	WasModified bool   `json:"wasModified"`
}

type batchItemResponse struct {
	Input       string `json:"input"`
	CleanURL    string `json:"cleanUrl,omitempty"`
	Removed     string `json:"removed,omitempty"`
	WasModified bool   `json:"wasModified"`
	Error       string `json:"error,omitempty"`
}

type batchResponse struct {
	Items []batchItemResponse `json:"items"`
}

type hostsResponse struct {
	Hosts []string `json:"hosts"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewCleanHandler(service service.CleanService) *CleanHandler {
	return &CleanHandler{service: service}
}

func (h *CleanHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/clean", h.Clean)
	g.POST("/clean", h.Clean)
	g.POST("/clean/text", h.CleanText)
	g.POST("/clean/batch", h.CleanBatch)
	g.GET("/hosts", h.Hosts)
	g.GET("/health", h.Health)
}

func (h *CleanHandler) Clean(c echo.Context) error {
	var req cleanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	result, err := h.service.Clean(c.Request().Context(), req.URL)
	return h.writeResult(c, result, err)
}

func (h *CleanHandler) CleanText(c echo.Context) error {
	var req cleanTextRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	result, err := h.service.CleanText(c.Request().Context(), req.Text)
	return h.writeResult(c, result, err)
}

func (h *CleanHandler) CleanBatch(c echo.Context) error {
	var req cleanBatchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	items, err := h.service.CleanBatch(c.Request().Context(), req.URLs)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := batchResponse{Items: make([]batchItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, toBatchItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *CleanHandler) Hosts(c echo.Context) error {
	return c.JSON(http.StatusOK, hostsResponse{Hosts: igclean.AllowedHosts()})
}

func (h *CleanHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

func (h *CleanHandler) writeResult(c echo.Context, result *igclean.Result, err error) error {
	if err != nil {
		return writeServiceError(c, err)
	}
	// Blank input: the caller clears whatever it was showing.
	if result == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toCleanResponse(*result))
}

func toCleanResponse(result igclean.Result) cleanResponse {
	return cleanResponse{
		CleanURL:    result.CleanURL,
		Removed:     result.Removed,
		WasModified: result.WasModified,
	}
}

func toBatchItemResponse(item service.BatchItem) batchItemResponse {
	resp := batchItemResponse{Input: item.Input}
	if item.Err != nil {
		_, resp.Error = errorStatus(item.Err)
		return resp
	}
	if item.Result != nil {
		resp.CleanURL = item.Result.CleanURL
		resp.Removed = item.Result.Removed
		resp.WasModified = item.Result.WasModified
	}
	return resp
}
