package repository

import (
	"context"
	"errors"

	"taskhub/internal/tracker/model"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type UserRepository interface {
	// Create a user; a taken username or email returns ErrDuplicate
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	// Missing ids are skipped
	GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error)
	// Case-insensitive substring search over username and email
	FindUsers(ctx context.Context, search string) ([]*model.User, error)
	// Remove a user: owned projects cascade, every weak reference is cleared
	DeleteUser(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *model.Project) error
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	FindProjects(ctx context.Context, scope model.ListScope, filter model.ProjectFilter) ([]*model.Project, error)
	UpdateProject(ctx context.Context, project *model.Project) error
	// Delete the project with its tasks, comments and attachments
	DeleteProject(ctx context.Context, id int64) error
	// Membership changes report whether anything changed
	AddProjectMember(ctx context.Context, projectID, userID int64) (bool, error)
	RemoveProjectMember(ctx context.Context, projectID, userID int64) (bool, error)
}

type TaskRepository interface {
	CreateTask(ctx context.Context, task *model.Task) error
	// Get a task by its hierarchical key; a task of another project is ErrNotFound
	GetTask(ctx context.Context, projectID, taskID int64) (*model.Task, error)
	FindTasks(ctx context.Context, scope model.ListScope, filter model.TaskFilter) ([]*model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) error
	// Delete the task with its comments and attachments
	DeleteTask(ctx context.Context, projectID, taskID int64) error
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, taskID, commentID int64) (*model.Comment, error)
	FindComments(ctx context.Context, scope model.ListScope, taskID int64) ([]*model.Comment, error)
	UpdateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, taskID, commentID int64) error
}

type AttachmentRepository interface {
	CreateAttachment(ctx context.Context, attachment *model.Attachment) error
	GetAttachment(ctx context.Context, taskID, attachmentID int64) (*model.Attachment, error)
	FindAttachments(ctx context.Context, scope model.ListScope, taskID int64) ([]*model.Attachment, error)
	UpdateAttachment(ctx context.Context, attachment *model.Attachment) error
	DeleteAttachment(ctx context.Context, taskID, attachmentID int64) error
}

// TrackerRepository is the entity store
type TrackerRepository interface {
	UserRepository
	ProjectRepository
	TaskRepository
	CommentRepository
	AttachmentRepository
	// Initialize Indexes
	EnsureIndexes(ctx context.Context) error
}
