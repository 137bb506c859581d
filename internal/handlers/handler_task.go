package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taskHandler handles HTTP requests for the agenda.
type taskHandler struct {
	taskService portssvc.TaskSvcFacade
}

func newTaskHandler(ts portssvc.TaskSvcFacade) *taskHandler {
	return &taskHandler{taskService: ts}
}

func registerTaskRoutes(rg *gin.RouterGroup, taskService portssvc.TaskSvcFacade) {
	h := newTaskHandler(taskService)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.listTasks)
		tasks.POST("", h.createTask)
		tasks.GET("/stats", h.getStats)
		tasks.GET("/calendar/:year/:month", h.getCalendar)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.PUT("/:id/completion", h.setCompletion)
		tasks.DELETE("/:id", h.deleteTask)
	}
}

// bindTaskFilter reads the filter shared by listing, calendar and stats.
func bindTaskFilter(c *gin.Context) (dto.ListTasksParams, error) {
	var params dto.ListTasksParams
	err := c.ShouldBindQuery(&params)
	return params, err
}

// createTask godoc
// @Summary Schedule a task
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security CookieAuth
// @Router /tasks [post]
func (h *taskHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusCreated, dto.TaskMutationResponse{
		Success: true,
		Message: "Tarefa criada com sucesso",
		Task:    dto.ToTaskResponse(*task),
	})
}

// getTask godoc
// @Summary Get a task
// @Tags tasks
// @Produce  json
// @Param   id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Security CookieAuth
// @Router /tasks/{id} [get]
func (h *taskHandler) getTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

// listTasks godoc
// @Summary List tasks
// @Description Ordered by date, then time. Tasks without a time come last within their day.
// @Tags tasks
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   kind query string false "capture, edit or meeting"
// @Param   completed query bool false "Completion flag"
// @Param   client query string false "Client name contains"
// @Success 200 {object} dto.ListTasksResponse
// @Security CookieAuth
// @Router /tasks [get]
func (h *taskHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, err := bindTaskFilter(c)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Invalid task filter")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTasksResponse(tasks))
}

// getCalendar godoc
// @Summary Month calendar with task statistics
// @Description The filter applies to both the calendar and the statistics. Statistics cover all matching tasks.
// @Tags tasks
// @Produce  json
// @Param   year path int true "Year (2000-2100)"
// @Param   month path int true "Month (1-12)"
// @Param   kind query string false "capture, edit or meeting"
// @Param   completed query bool false "Completion flag"
// @Param   client query string false "Client name contains"
// @Success 200 {object} dto.CalendarResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Security CookieAuth
// @Router /tasks/calendar/{year}/{month} [get]
func (h *taskHandler) getCalendar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, yearErr := strconv.Atoi(c.Param("year"))
	month, monthErr := strconv.Atoi(c.Param("month"))
	if yearErr != nil || monthErr != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "Ano e mês devem ser números"})
		return
	}
	params, err := bindTaskFilter(c)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Invalid task filter")
		return
	}

	agg, err := h.taskService.GetTaskCalendar(c.Request.Context(), year, month, filter)
	if err != nil {
		respondError(c, logger, err, "Failed to build calendar")
		return
	}
	c.JSON(http.StatusOK, dto.ToCalendarResponse(*agg))
}

// getStats godoc
// @Summary Task statistics
// @Tags tasks
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   kind query string false "capture, edit or meeting"
// @Param   completed query bool false "Completion flag"
// @Success 200 {object} dto.TaskStatsResponse
// @Security CookieAuth
// @Router /tasks/stats [get]
func (h *taskHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, err := bindTaskFilter(c)
	if err != nil {
		respondBindError(c, logger, err)
		return
	}
	filter, err := params.ToDomain()
	if err != nil {
		respondError(c, logger, err, "Invalid task filter")
		return
	}

	stats, err := h.taskService.GetTaskStats(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to compute task statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskStatsResponse(*stats))
}

// updateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   id path string true "Task ID"
// @Param   task body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.TaskMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 409 {object} dto.ErrorResponse "Stale version"
// @Security CookieAuth
// @Router /tasks/{id} [put]
func (h *taskHandler) updateTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.TaskMutationResponse{
		Success: true,
		Message: "Tarefa atualizada com sucesso",
		Task:    dto.ToTaskResponse(*task),
	})
}

// setCompletion godoc
// @Summary Mark a task as done or pending
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   id path string true "Task ID"
// @Param   completion body dto.SetTaskCompletionRequest true "Completion flag"
// @Success 200 {object} dto.TaskMutationResponse
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Failure 409 {object} dto.ErrorResponse "Stale version"
// @Security CookieAuth
// @Router /tasks/{id}/completion [put]
func (h *taskHandler) setCompletion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetTaskCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	task, err := h.taskService.SetTaskCompletion(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update task completion")
		return
	}
	c.JSON(http.StatusOK, dto.TaskMutationResponse{
		Success: true,
		Message: "Tarefa atualizada com sucesso",
		Task:    dto.ToTaskResponse(*task),
	})
}

// deleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce  json
// @Param   id path string true "Task ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.ErrorResponse "Task not found"
// @Security CookieAuth
// @Router /tasks/{id} [delete]
func (h *taskHandler) deleteTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, logger, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Message: "Tarefa excluída com sucesso"})
}
