package validation

import (
	"errors"
	"strings"
	"time"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/core/domain"
)

var (
	ErrTitleRequired      = errors.New("task title required")
	ErrInvalidTaskPayload = errors.New("invalid task payload")
)

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrTitleRequired
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		DueDate:     dueDate,
		CategoryID:  req.CategoryID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrTitleRequired
		}
		title = &value
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	// Status validity (pending/completed) is the service's call; here the
	// string is only carried over.
	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      status,
		CategoryID:  req.CategoryID,
	}, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	parsed, err := time.Parse(dueDateLayout, *value)
	if err != nil {
		return nil, ErrInvalidTaskPayload
	}
	return &parsed, nil
}
