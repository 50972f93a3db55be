package http

import (
	"github.com/gin-gonic/gin"

	"atrova/internal/middleware"
	"atrova/internal/model"
	"atrova/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task for the caller. Also served at POST /api/task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner ID"
// @Param       body       body   createReq true "Task data"
// @Success     201 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing owner"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, taskEnvelope{Task: newTaskResp(output.Task)})
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, newest first, or one day's tasks by due time.
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true  "Owner ID"
// @Param       completed  query  bool   false "Filter by completion"
// @Param       due        query  string false "today, tomorrow, next <weekday>, in N days"
// @Param       sort       query  string false "created (default) or due"
// @Param       limit      query  int    false "Page size (default: 20, max: 100)"
// @Param       offset     query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.scope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true "Owner ID"
// @Param       id         path   string true "Task ID"
// @Success     200 {object} taskEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(output.Task)})
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields keep their value; clear_due removes the due time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string    true "Owner ID"
// @Param       id         path   string    true "Task ID"
// @Param       body       body   updateReq true "Fields to update"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(output.Task)})
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       X-Owner-ID header string true "Owner ID"
// @Param       id         path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, h.scope(c), c.Param("id")); err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Extract godoc
// @Summary     Create a task from a chat message
// @Description Runs the extraction pipeline over the message and stores the task it describes.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string     true "Owner ID"
// @Param       body       body   extractReq true "Chat message"
// @Success     201 {object} extractResp
// @Failure     400 {object} response.Resp "Empty message"
// @Failure     422 {object} response.Resp "The model reply could not be understood"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Text generation failed"
// @Router      /api/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromText(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "task.delivery.http.Extract: %v", err)
		if httpErr, data, ok := h.mapExtractionError(err); ok {
			response.Error(c, httpErr, data)
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newExtractResp(output))
}

// scope returns the caller set by the Auth middleware.
func (h *handler) scope(c *gin.Context) model.Scope {
	sc, _ := middleware.GetScope(c)
	return sc
}
