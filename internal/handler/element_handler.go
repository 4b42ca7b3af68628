package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/tiw/gaap-web-service/internal/handler/dto"
	"github.com/tiw/gaap-web-service/internal/usecase"
)

const (
	defaultPageLimit = 100
)

// ElementHandler handles taxonomy element requests
type ElementHandler struct {
	usecase usecase.ElementUsecase
	logger  *slog.Logger
}

// NewElementHandler creates a new element handler
func NewElementHandler(uc usecase.ElementUsecase) *ElementHandler {
	return &ElementHandler{
		usecase: uc,
		logger:  slog.Default(),
	}
}

// Info returns the service description and endpoint directory
//
//	@Summary		Service info
//	@Description	Describes the service and lists its endpoints
//	@Tags			info
//	@Produce		json
//	@Success		200	{object}	dto.ServiceInfoResponse
//	@Router			/ [get]
func (h *ElementHandler) Info(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, dto.ServiceInfoResponse{
		Message:     "US GAAP Taxonomy Web Service",
		Description: "Resolves taxonomy element names to labels and accounting-standard references",
		Endpoints: map[string]string{
			"/elements":                    "List all taxonomy element names",
			"/element/{name}":              "Full resolution of one element",
			"/element/{name}/label":        "Human-readable label of one element",
			"/element/{name}/references":   "Accounting-standard references of one element",
			"/search?keyword={keyword}":    "Case-insensitive substring search over element names",
		},
		WebInterface: "/index.html",
	})
}

// List returns a page of all element names
//
//	@Summary		List elements
//	@Description	Lists taxonomy element names with skip/limit pagination
//	@Tags			elements
//	@Produce		json
//	@Param			skip	query		int	false	"Offset into the sorted name list"
//	@Param			limit	query		int	false	"Page size (default 100)"
//	@Success		200		{object}	dto.ElementListResponse
//	@Failure		400		{object}	handler.ErrorBody
//	@Router			/elements [get]
func (h *ElementHandler) List(ctx context.Context, c *app.RequestContext) {
	skip, limit, ok := pageParams(c)
	if !ok {
		return
	}

	elements, total, err := h.usecase.List(ctx, skip, limit)
	if err != nil {
		h.logger.Error("failed to list elements", "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.ElementListResponse{
		Total:    total,
		Skip:     skip,
		Limit:    limit,
		Elements: elements,
	})
}

// Get returns the full resolution of one element
//
//	@Summary		Get element
//	@Description	Resolves label and references for one taxonomy element
//	@Tags			elements
//	@Produce		json
//	@Param			name	path		string	true	"Element name, e.g. Assets"
//	@Success		200		{object}	entity.ElementInfo
//	@Failure		404		{object}	handler.ErrorBody
//	@Router			/element/{name} [get]
func (h *ElementHandler) Get(ctx context.Context, c *app.RequestContext) {
	name := c.Param("name")

	info, err := h.usecase.Get(ctx, name)
	if err != nil {
		h.logger.Warn("element resolution failed", "element", name, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, info)
}

// GetLabel returns the label of one element
//
//	@Summary		Get element label
//	@Description	Resolves the human-readable label of one taxonomy element
//	@Tags			elements
//	@Produce		json
//	@Param			name	path		string	true	"Element name"
//	@Success		200		{object}	dto.ElementLabelResponse
//	@Failure		404		{object}	handler.ErrorBody
//	@Router			/element/{name}/label [get]
func (h *ElementHandler) GetLabel(ctx context.Context, c *app.RequestContext) {
	name := c.Param("name")

	label, err := h.usecase.Label(ctx, name)
	if err != nil {
		h.logger.Warn("label resolution failed", "element", name, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.ElementLabelResponse{
		ElementName: name,
		Label:       label,
	})
}

// GetReferences returns the references of one element
//
//	@Summary		Get element references
//	@Description	Resolves the accounting-standard citations of one taxonomy element
//	@Tags			elements
//	@Produce		json
//	@Param			name	path		string	true	"Element name"
//	@Success		200		{object}	dto.ElementReferencesResponse
//	@Failure		404		{object}	handler.ErrorBody
//	@Router			/element/{name}/references [get]
func (h *ElementHandler) GetReferences(ctx context.Context, c *app.RequestContext) {
	name := c.Param("name")

	refs, err := h.usecase.References(ctx, name)
	if err != nil {
		h.logger.Warn("reference resolution failed", "element", name, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.ElementReferencesResponse{
		ElementName: name,
		References:  refs,
	})
}

// Search returns a page of elements matching a keyword
//
//	@Summary		Search elements
//	@Description	Case-insensitive substring search over element names
//	@Tags			elements
//	@Produce		json
//	@Param			keyword	query		string	true	"Search keyword"
//	@Param			skip	query		int		false	"Offset into the match list"
//	@Param			limit	query		int		false	"Page size (default 100)"
//	@Success		200		{object}	dto.SearchResponse
//	@Failure		400		{object}	handler.ErrorBody
//	@Router			/search [get]
func (h *ElementHandler) Search(ctx context.Context, c *app.RequestContext) {
	keyword := c.Query("keyword")
	skip, limit, ok := pageParams(c)
	if !ok {
		return
	}

	elements, total, err := h.usecase.Search(ctx, keyword, skip, limit)
	if err != nil {
		h.logger.Warn("search failed", "keyword", keyword, "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.SearchResponse{
		Keyword:  keyword,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
		Elements: elements,
	})
}

// pageParams parses skip/limit query parameters, writing a 400 response
// and returning ok=false on malformed input.
func pageParams(c *app.RequestContext) (skip, limit int, ok bool) {
	skip, limit = 0, defaultPageLimit

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			BadRequestResponse(c, "skip must be an integer")
			return 0, 0, false
		}
		skip = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			BadRequestResponse(c, "limit must be an integer")
			return 0, 0, false
		}
		limit = v
	}

	return skip, limit, true
}
