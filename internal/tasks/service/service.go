package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexportal_backend/internal/events"
	"lexportal_backend/internal/tasks/domain"
	"lexportal_backend/internal/tasks/repository"
	"lexportal_backend/internal/tasks/transport"
	"lexportal_backend/platform/apperr"
	platformevents "lexportal_backend/platform/events"
	"lexportal_backend/platform/logger"
	"lexportal_backend/platform/sanitize"
)

const defaultPriority = "Medium"

// ReminderScheduler enqueues a due-date reminder for a task. Implementations
// may be a no-op when background processing is disabled.
type ReminderScheduler interface {
	ScheduleDueReminder(ctx context.Context, taskID uuid.UUID, dueDate time.Time) error
}

// ClientDirectory reports whether a client record exists. Satisfied by the
// clients repository.
type ClientDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo      repository.Repository
	clients   ClientDirectory
	bus       platformevents.Bus
	scheduler ReminderScheduler
	log       *logger.Logger
}

func NewService(repo repository.Repository, clients ClientDirectory, bus platformevents.Bus, scheduler ReminderScheduler, log *logger.Logger) *Service {
	return &Service{repo: repo, clients: clients, bus: bus, scheduler: scheduler, log: log}
}

func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req transport.CreateTaskRequest) (transport.TaskResponse, error) {
	const op = "tasks.service.Create"

	status := domain.StatusToDo
	if req.Status != "" {
		normalized, ok := domain.NormalizeStatus(req.Status)
		if !ok {
			return transport.TaskResponse{}, apperr.Validation("unknown task status").WithOp(op)
		}
		status = normalized
	}

	priority := req.Priority
	if priority == "" {
		priority = defaultPriority
	}

	dueDate, err := parseTimePtr(req.DueDate)
	if err != nil {
		return transport.TaskResponse{}, apperr.Validation("dueDate must be an RFC 3339 timestamp").WithOp(op)
	}

	clientID, err := parseUUIDPtr(req.ClientID)
	if err != nil {
		return transport.TaskResponse{}, apperr.Validation("clientId must be a valid UUID").WithOp(op)
	}
	assignedTo, err := parseUUIDPtr(req.AssignedTo)
	if err != nil {
		return transport.TaskResponse{}, apperr.Validation("assignedToId must be a valid UUID").WithOp(op)
	}

	if err := s.checkClient(ctx, clientID); err != nil {
		return transport.TaskResponse{}, err
	}

	task, err := s.repo.Create(ctx, repository.CreateParams{
		Title:       strings.TrimSpace(sanitize.Text(req.Title)),
		Description: sanitize.TextPtr(req.Description),
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
		ClientID:    clientID,
		CreatedBy:   actorID,
		AssignedTo:  assignedTo,
	})
	if err != nil {
		return transport.TaskResponse{}, err
	}

	s.bus.Publish(ctx, events.TaskCreated{
		BaseEvent:   platformevents.NewBaseEvent(),
		TaskID:      task.ID,
		Title:       task.Title,
		CreatedByID: actorID,
	})
	if task.AssignedTo != nil {
		s.bus.Publish(ctx, events.TaskAssigned{
			BaseEvent:    platformevents.NewBaseEvent(),
			TaskID:       task.ID,
			Title:        task.Title,
			AssignedToID: *task.AssignedTo,
			AssignedByID: actorID,
		})
	}
	s.scheduleReminder(ctx, task)

	s.log.InfoContext(ctx, "task created", "task_id", task.ID, "created_by", actorID)
	return s.toResponse(task), nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.TaskResponse{}, err
	}
	return s.toResponse(task), nil
}

func (s *Service) List(ctx context.Context, req transport.ListTasksRequest) (transport.TaskListResponse, error) {
	const op = "tasks.service.List"

	page, pageSize := normalizePaging(req.Page, req.PageSize)

	status := filterValue(req.Status)
	if status != "" {
		normalized, ok := domain.NormalizeStatus(status)
		if !ok {
			return transport.TaskListResponse{}, apperr.Validation("unknown task status").WithOp(op)
		}
		status = normalized
	}

	assignedTo, err := parseUUIDFilter(req.AssignedTo)
	if err != nil {
		return transport.TaskListResponse{}, apperr.Validation("assignedToId must be a valid UUID").WithOp(op)
	}
	clientID, err := parseUUIDFilter(req.ClientID)
	if err != nil {
		return transport.TaskListResponse{}, apperr.Validation("clientId must be a valid UUID").WithOp(op)
	}

	tasks, total, err := s.repo.List(ctx, repository.ListParams{
		Search:     strings.TrimSpace(req.Search),
		Status:     status,
		AssignedTo: assignedTo,
		ClientID:   clientID,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	})
	if err != nil {
		return transport.TaskListResponse{}, err
	}

	items := make([]transport.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, s.toResponse(t))
	}
	totalPages := (total + pageSize - 1) / pageSize
	return transport.TaskListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) Update(ctx context.Context, actorID, id uuid.UUID, req transport.UpdateTaskRequest) (transport.TaskResponse, error) {
	const op = "tasks.service.Update"

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.TaskResponse{}, err
	}

	var status *string
	if req.Status != nil {
		normalized, ok := domain.NormalizeStatus(*req.Status)
		if !ok {
			return transport.TaskResponse{}, apperr.Validation("unknown task status").WithOp(op)
		}
		status = &normalized
	}

	if req.ClientID.Set {
		if err := s.checkClient(ctx, req.ClientID.Value); err != nil {
			return transport.TaskResponse{}, err
		}
	}

	task, err := s.repo.Update(ctx, repository.UpdateParams{
		ID:          id,
		Title:       sanitize.TextPtr(req.Title),
		Description: sanitize.TextPtr(req.Description),
		Status:      status,
		Priority:    req.Priority,
		DueDate:     req.DueDate.Value,
		DueDateSet:  req.DueDate.Set,
		ClientID:    req.ClientID.Value,
		ClientSet:   req.ClientID.Set,
		AssignedTo:  req.AssignedTo.Value,
		AssignedSet: req.AssignedTo.Set,
	})
	if err != nil {
		return transport.TaskResponse{}, err
	}

	if task.AssignedTo != nil && assigneeChanged(current.AssignedTo, task.AssignedTo) {
		s.bus.Publish(ctx, events.TaskAssigned{
			BaseEvent:    platformevents.NewBaseEvent(),
			TaskID:       task.ID,
			Title:        task.Title,
			AssignedToID: *task.AssignedTo,
			AssignedByID: actorID,
		})
	}
	if domain.IsCompleted(task.Status) && !domain.IsCompleted(current.Status) {
		s.bus.Publish(ctx, events.TaskCompleted{
			BaseEvent: platformevents.NewBaseEvent(),
			TaskID:    task.ID,
			Title:     task.Title,
		})
	}
	if req.DueDate.Set {
		s.scheduleReminder(ctx, task)
	}

	s.log.InfoContext(ctx, "task updated", "task_id", task.ID, "updated_by", actorID)
	return s.toResponse(task), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}

// Statuses returns the canonical workflow statuses.
func (s *Service) Statuses() transport.TaskStatusesResponse {
	return transport.TaskStatusesResponse{Statuses: domain.AllStatuses()}
}

func (s *Service) ListComments(ctx context.Context, taskID uuid.UUID) (transport.CommentListResponse, error) {
	comments, err := s.repo.ListComments(ctx, taskID)
	if err != nil {
		return transport.CommentListResponse{}, err
	}

	items := make([]transport.CommentResponse, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentResponse(c))
	}
	return transport.CommentListResponse{Items: items}, nil
}

func (s *Service) CreateComment(ctx context.Context, authorID uuid.UUID, req transport.CreateCommentRequest) (transport.CommentResponse, error) {
	const op = "tasks.service.CreateComment"

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return transport.CommentResponse{}, apperr.Validation("taskId must be a valid UUID").WithOp(op)
	}

	comment, err := s.repo.CreateComment(ctx, repository.CreateCommentParams{
		TaskID:                taskID,
		AuthorID:              authorID,
		Body:                  sanitize.Text(req.Body),
		AttachmentFileKey:     req.AttachmentFileKey,
		AttachmentFileName:    req.AttachmentFileName,
		AttachmentContentType: req.AttachmentContentType,
		AttachmentSizeBytes:   req.AttachmentSizeBytes,
	})
	if err != nil {
		return transport.CommentResponse{}, err
	}

	s.log.InfoContext(ctx, "comment created", "task_id", taskID, "comment_id", comment.ID)
	return toCommentResponse(comment), nil
}

func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteComment(ctx, id)
}

func (s *Service) scheduleReminder(ctx context.Context, task repository.Task) {
	if s.scheduler == nil || task.DueDate == nil || task.AssignedTo == nil || domain.IsCompleted(task.Status) {
		return
	}
	if err := s.scheduler.ScheduleDueReminder(ctx, task.ID, *task.DueDate); err != nil {
		s.log.WarnContext(ctx, "could not schedule due reminder", "task_id", task.ID, "error", err)
	}
}

// checkClient verifies a referenced client exists up front, so the caller
// sees a clear validation error instead of a foreign key failure.
func (s *Service) checkClient(ctx context.Context, clientID *uuid.UUID) error {
	const op = "tasks.service.checkClient"

	if clientID == nil {
		return nil
	}
	exists, err := s.clients.Exists(ctx, *clientID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("referenced client does not exist").WithOp(op)
	}
	return nil
}

func assigneeChanged(before, after *uuid.UUID) bool {
	if after == nil {
		return false
	}
	return before == nil || *before != *after
}

func filterValue(v string) string {
	if v == "All" {
		return ""
	}
	return v
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseUUIDPtr(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseUUIDFilter(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *Service) toResponse(t repository.Task) transport.TaskResponse {
	return transport.TaskResponse{
		ID:              t.ID.String(),
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		Priority:        t.Priority,
		DueDate:         formatTimePtr(t.DueDate),
		ClientID:        uuidPtrString(t.ClientID),
		ClientName:      t.ClientName,
		CreatedBy:       t.CreatedBy.String(),
		CreatorName:     t.CreatorName,
		AssignedTo:      uuidPtrString(t.AssignedTo),
		AssigneeName:    t.AssigneeName,
		ProgressPercent: domain.ProgressPercent(t.Status),
		IsOverdue:       domain.IsOverdue(t.Status, t.DueDate, time.Now()),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt.Format(time.RFC3339),
	}
}

func toCommentResponse(c repository.Comment) transport.CommentResponse {
	return transport.CommentResponse{
		ID:                    c.ID.String(),
		TaskID:                c.TaskID.String(),
		AuthorID:              c.AuthorID.String(),
		AuthorName:            c.AuthorName,
		Body:                  c.Body,
		AttachmentFileKey:     c.AttachmentFileKey,
		AttachmentFileName:    c.AttachmentFileName,
		AttachmentContentType: c.AttachmentContentType,
		AttachmentSizeBytes:   c.AttachmentSizeBytes,
		CreatedAt:             c.CreatedAt.Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
