package transport

// CreateTaskRequest is the payload for creating a task. Status defaults to
// "To Do" when omitted; the service normalizes legacy aliases.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DueDate     *string `json:"dueDate"` // RFC 3339
	ClientID    *string `json:"clientId" validate:"omitempty,uuid"`
	AssignedTo  *string `json:"assignedToId" validate:"omitempty,uuid"`
}

// UpdateTaskRequest is a partial update. The Optional wrappers let callers
// explicitly clear the due date, client, or assignee with null.
type UpdateTaskRequest struct {
	Title       *string      `json:"title" validate:"omitempty,max=200"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	Priority    *string      `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DueDate     OptionalTime `json:"dueDate,omitzero"`
	ClientID    OptionalUUID `json:"clientId,omitzero"`
	AssignedTo  OptionalUUID `json:"assignedToId,omitzero"`
}

// ListTasksRequest captures the query parameters for the task list.
type ListTasksRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	AssignedTo string `form:"assignedToId" validate:"omitempty,uuid"`
	ClientID   string `form:"clientId" validate:"omitempty,uuid"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

type TaskResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	DueDate         *string `json:"dueDate"`
	ClientID        *string `json:"clientId"`
	ClientName      *string `json:"clientName"`
	CreatedBy       string  `json:"createdBy"`
	CreatorName     string  `json:"creatorName"`
	AssignedTo      *string `json:"assignedToId"`
	AssigneeName    *string `json:"assigneeName"`
	ProgressPercent int     `json:"progressPercent"`
	IsOverdue       bool    `json:"isOverdue"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type TaskListResponse struct {
	Items      []TaskResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

type TaskStatusesResponse struct {
	Statuses []string `json:"statuses"`
}

// CreateCommentRequest is the payload for posting a comment on a task.
// Attachment fields reference a previously uploaded object.
type CreateCommentRequest struct {
	TaskID                string  `json:"taskId" validate:"required,uuid"`
	Body                  string  `json:"body" validate:"required"`
	AttachmentFileKey     *string `json:"attachmentFileKey"`
	AttachmentFileName    *string `json:"attachmentFileName"`
	AttachmentContentType *string `json:"attachmentContentType"`
	AttachmentSizeBytes   *int64  `json:"attachmentSizeBytes"`
}

type CommentResponse struct {
	ID                    string  `json:"id"`
	TaskID                string  `json:"taskId"`
	AuthorID              string  `json:"authorId"`
	AuthorName            string  `json:"authorName"`
	Body                  string  `json:"body"`
	AttachmentFileKey     *string `json:"attachmentFileKey,omitempty"`
	AttachmentFileName    *string `json:"attachmentFileName,omitempty"`
	AttachmentContentType *string `json:"attachmentContentType,omitempty"`
	AttachmentSizeBytes   *int64  `json:"attachmentSizeBytes,omitempty"`
	CreatedAt             string  `json:"createdAt"`
}

type CommentListResponse struct {
	Items []CommentResponse `json:"items"`
}
