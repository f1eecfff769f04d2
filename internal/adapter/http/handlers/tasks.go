package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/adapter/http/mapper"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/adapter/http/validation"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.Abort(c, http.StatusUnauthorized, apierrors.MsgAuthRequired)
		return
	}

	var req dto.ListTasksQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	query, err := validation.BuildListTasksQuery(req)
	if err != nil {
		middleware.Abort(c, http.StatusBadRequest, validation.MsgKey(err))
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), ownerID, query)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("user_id", ownerID), zap.Error(err))
		middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) TaskStats(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.Abort(c, http.StatusUnauthorized, apierrors.MsgAuthRequired)
		return
	}

	stats, err := h.taskService.TaskStats(c.Request.Context(), ownerID)
	if err != nil {
		zap.L().Error("failed to count tasks", zap.Uint64("user_id", ownerID), zap.Error(err))
		middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStats(stats))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.Abort(c, http.StatusUnauthorized, apierrors.MsgAuthRequired)
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		middleware.Abort(c, http.StatusBadRequest, validation.MsgKey(err))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), ownerID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			middleware.Abort(c, http.StatusBadRequest, apierrors.MsgTitleRequired)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("user_id", ownerID), zap.Error(err))
		middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.Abort(c, http.StatusUnauthorized, apierrors.MsgAuthRequired)
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	var req dto.UpdateTaskRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		middleware.Abort(c, http.StatusBadRequest, validation.MsgKey(err))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), ownerID, taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			middleware.Abort(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
		case errors.Is(err, domain.ErrInvalidInput):
			middleware.Abort(c, http.StatusBadRequest, apierrors.MsgTitleRequired)
		default:
			zap.L().Error("failed to update task", zap.Uint64("user_id", ownerID), zap.Uint64("task_id", taskID), zap.Error(err))
			middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.Abort(c, http.StatusUnauthorized, apierrors.MsgAuthRequired)
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), ownerID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			middleware.Abort(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("user_id", ownerID), zap.Uint64("task_id", taskID), zap.Error(err))
		middleware.Abort(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseTaskID(c *gin.Context) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		middleware.Abort(c, http.StatusBadRequest, apierrors.MsgInvalidTaskID)
		return 0, false
	}
	return taskID, true
}
