package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filesvault/files-api/internal/api/metrics"
	"github.com/filesvault/files-api/internal/core/ports"
)

// FileHandler handles file node creation, retrieval, and listing.
type FileHandler struct {
	service ports.FileService
}

func NewFileHandler(service ports.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Create persists a new file node owned by the authenticated user.
//
// @Summary      Create a file node
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createFileRequest  true  "File node details"
// @Success      201   {object}  domain.FileNode
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /files [post]
func (h *FileHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createFileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	node, err := h.service.Create(c.Request().Context(), user, ports.CreateFileInput{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: string(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return err
	}

	metrics.FilesCreatedTotal.WithLabelValues(string(node.Type)).Inc()
	return c.JSON(http.StatusCreated, node)
}

// Get retrieves a single file node owned by the authenticated user.
//
// @Summary      Get a file node by id
// @Tags         files
// @Produce      json
// @Security     TokenAuth
// @Param        id  path      string  true  "File node id"
// @Success      200  {object}  domain.FileNode
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [get]
func (h *FileHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	node, err := h.service.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, node)
}

// List returns one page of the authenticated user's file nodes.
//
// @Summary      List file nodes
// @Tags         files
// @Produce      json
// @Security     TokenAuth
// @Param        parentId  query     string  false  "Filter by parent folder id (0 for top level)"
// @Param        page      query     int     false  "0-based page number"
// @Success      200  {array}  domain.FileNode
// @Failure      401  {object}  errorResponse
// @Router       /files [get]
func (h *FileHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	page := 0
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	nodes, err := h.service.List(c.Request().Context(), user, ports.ListFilesInput{
		ParentID: c.QueryParam("parentId"),
		Page:     page,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nodes)
}
