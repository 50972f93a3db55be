package http

import (
	"github.com/gin-gonic/gin"

	"atrova/internal/middleware"
	"atrova/pkg/response"
)

// Create godoc
// @Summary     Create an event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner ID"
// @Param       body       body   createReq true "Event data"
// @Success     201 {object} eventEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "event.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.Created(c, eventEnvelope{Event: newEventResp(output.Event)})
}

// List godoc
// @Summary     List events
// @Description Lists the caller's events. With on=YYYY-MM-DD, returns what happens that day, repeats included.
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner ID"
// @Param       on         query  string false "Date (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "event.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get an event
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true "Owner ID"
// @Param       id         path   string true "Event ID"
// @Success     200 {object} eventEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "event.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, eventEnvelope{Event: newEventResp(output.Event)})
}

// Update godoc
// @Summary     Update an event
// @Description Partial update. Omitted fields keep their value.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner ID"
// @Param       id         path   string    true "Event ID"
// @Param       body       body   updateReq true "Fields to update"
// @Success     200 {object} eventEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "event.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, eventEnvelope{Event: newEventResp(output.Event)})
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       X-Owner-ID header string true "Owner ID"
// @Param       id         path   string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "event.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, nil)
}
