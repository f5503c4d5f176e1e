package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work, optionally tied to a client and assigned to an
// agent. Status is one of the canonical values in the tasks domain package.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Status      string
	Priority    string
	DueDate     *time.Time
	ClientID    *uuid.UUID
	CreatedBy   uuid.UUID
	AssignedTo  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// joined display fields, populated by list and get queries
	ClientName   *string
	AssigneeName *string
	CreatorName  string
}

// Comment is a discussion entry on a task, optionally carrying an uploaded
// attachment reference.
type Comment struct {
	ID                    uuid.UUID
	TaskID                uuid.UUID
	AuthorID              uuid.UUID
	Body                  string
	AttachmentFileKey     *string
	AttachmentFileName    *string
	AttachmentContentType *string
	AttachmentSizeBytes   *int64
	CreatedAt             time.Time

	AuthorName string
}

type CreateParams struct {
	Title       string
	Description *string
	Status      string
	Priority    string
	DueDate     *time.Time
	ClientID    *uuid.UUID
	CreatedBy   uuid.UUID
	AssignedTo  *uuid.UUID
}

// UpdateParams is a partial update. The Set flags distinguish clearing a
// nullable reference from leaving it untouched.
type UpdateParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	DueDateSet  bool
	ClientID    *uuid.UUID
	ClientSet   bool
	AssignedTo  *uuid.UUID
	AssignedSet bool
}

type ListParams struct {
	Search     string
	Status     string
	AssignedTo *uuid.UUID
	ClientID   *uuid.UUID
	Offset     int
	Limit      int
}

type CreateCommentParams struct {
	TaskID                uuid.UUID
	AuthorID              uuid.UUID
	Body                  string
	AttachmentFileKey     *string
	AttachmentFileName    *string
	AttachmentContentType *string
	AttachmentSizeBytes   *int64
}

// DueSoonParams selects incomplete assigned tasks due inside a window, used
// by the reminder scheduler.
type DueSoonParams struct {
	From time.Time
	To   time.Time
}

type TaskReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	List(ctx context.Context, params ListParams) ([]Task, int, error)
	ListDueSoon(ctx context.Context, params DueSoonParams) ([]Task, error)
}

type TaskWriter interface {
	Create(ctx context.Context, params CreateParams) (Task, error)
	Update(ctx context.Context, params UpdateParams) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentReader interface {
	ListComments(ctx context.Context, taskID uuid.UUID) ([]Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (Comment, error)
}

type CommentWriter interface {
	CreateComment(ctx context.Context, params CreateCommentParams) (Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

// Repository combines all task repository operations.
type Repository interface {
	TaskReader
	TaskWriter
	CommentReader
	CommentWriter
}
