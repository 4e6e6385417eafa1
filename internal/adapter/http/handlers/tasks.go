package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/adapter/http/mapper"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/adapter/http/validation"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
	"tasktrack/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	tasks, err := h.taskService.ListTasks(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	items := mapper.ToTaskItems(tasks)
	c.JSON(http.StatusOK, dto.TaskListResponse{Tasks: items, Count: len(items)})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	taskID, ok := parseIDParam(c, lang, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		h.respondTaskPayloadError(c, err, lang)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), identity.UserID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskCategory, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Message: "Task created successfully",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	taskID, ok := parseIDParam(c, lang, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req)
	if err != nil {
		h.respondTaskPayloadError(c, err, lang)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, identity.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskStatus, lang),
			)
		case errors.Is(err, domain.ErrInvalidCategory):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskCategory, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Message: "Task updated successfully",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	taskID, ok := parseIDParam(c, lang, apierrors.MsgTaskNotFound)
	if !ok {
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Message: "Task deleted successfully",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) respondTaskPayloadError(c *gin.Context, err error, lang string) {
	msgKey := apierrors.MsgInvalidTaskPayload
	if errors.Is(err, validation.ErrTitleRequired) {
		msgKey = apierrors.MsgTaskTitleRequired
	}
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msgKey, lang))
}
