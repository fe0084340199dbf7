package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant"
	"github.com/restaurants/restaurants-api/backend/go-services/internal/restaurant/service"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/logger"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/middleware"
	"github.com/restaurants/restaurants-api/backend/go-services/pkg/response"
)

// idPattern rejects obviously malformed keys before any storage round trip.
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

const internalErrorMessage = "Internal server error"

// Handler serves the /api/restaurants routes.
type Handler struct {
	svc        service.Service
	showErrors bool
}

// New returns a Handler. With showErrors set, failure envelopes include the
// raw error detail; it must be false in production.
func New(svc service.Service, showErrors bool) *Handler {
	return &Handler{svc: svc, showErrors: showErrors}
}

// Register mounts the restaurant routes under rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	g := rg.Group("/api/restaurants")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Replace)
	g.DELETE("/:id", h.Delete)
	g.PATCH("/:id/deactivate", h.Deactivate)
}

// List returns one page of restaurants, optionally filtered by borough.
func (h *Handler) List(c *gin.Context) {
	q, err := restaurant.ParseListQuery(c.Request.URL.Query())
	if err != nil {
		h.fail(c, err)
		return
	}
	items, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	env := response.OK(items, "")
	env.Pagination = &response.Pagination{
		Page:          q.Page,
		PerPage:       q.PerPage,
		TotalReturned: len(items),
		HasMore:       len(items) == q.PerPage,
	}
	env.Query = &response.Query{Page: q.Page, PerPage: q.PerPage}
	if q.Borough != "" {
		b := q.Borough
		env.Filter = &response.Filter{Borough: b}
		env.Query.Borough = &b
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	r, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(r, ""))
}

func (h *Handler) Create(c *gin.Context) {
	p, err := bindPayload(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	r, err := h.svc.Create(c.Request.Context(), p.Restaurant())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.OK(r, "Restaurant created successfully"))
}

// Replace overwrites the whole record; partial bodies fail validation.
func (h *Handler) Replace(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := bindPayload(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	r, err := h.svc.Replace(c.Request.Context(), id, p.Restaurant())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(r, "Restaurant updated successfully"))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	r, err := h.svc.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OK(r, "Restaurant deactivated successfully"))
}

func (h *Handler) pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !idPattern.MatchString(id) {
		h.fail(c, restaurant.InvalidKey(id))
		return "", false
	}
	return id, true
}

// bindPayload requires a non-empty JSON object body.
func bindPayload(c *gin.Context) (*restaurant.Payload, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, &restaurant.Error{Kind: restaurant.KindInvalidInput, Message: "Unable to read request body", Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, restaurant.InvalidInput("Request body is required")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &restaurant.Error{Kind: restaurant.KindInvalidInput, Message: "Invalid JSON body", Err: err}
	}
	if len(fields) == 0 {
		return nil, restaurant.InvalidInput("Request body is required")
	}
	var p restaurant.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &restaurant.Error{Kind: restaurant.KindInvalidInput, Message: "Invalid request body", Err: err}
	}
	return &p, nil
}

// StatusFor maps an error to its HTTP status and user-facing message.
func StatusFor(err error) (int, string) {
	var de *restaurant.Error
	if !errors.As(err, &de) {
		return http.StatusInternalServerError, internalErrorMessage
	}
	switch de.Kind {
	case restaurant.KindInvalidInput, restaurant.KindInvalidKey, restaurant.KindValidation, restaurant.KindDuplicate:
		return http.StatusBadRequest, de.Message
	case restaurant.KindNotFound:
		return http.StatusNotFound, de.Message
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Errorf("%s %s: %v (request_id=%s)", c.Request.Method, c.Request.URL.Path, err, c.GetString(middleware.KeyRequestID))
		_ = c.Error(err)
	}
	c.JSON(status, response.Fail(msg, err.Error(), h.showErrors))
}
