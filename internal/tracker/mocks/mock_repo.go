// Package mocks holds testify mocks shared by the tracker package tests.
package mocks

import (
	"context"

	"taskhub/internal/tracker/model"

	"github.com/stretchr/testify/mock"
)

// MockTrackerRepository is a shared mock implementation of repository.TrackerRepository for testing.
type MockTrackerRepository struct {
	mock.Mock
}

func (m *MockTrackerRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// UserRepository mock methods

func (m *MockTrackerRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockTrackerRepository) GetUser(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockTrackerRepository) GetUsersByIDs(ctx context.Context, ids []int64) ([]*model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockTrackerRepository) FindUsers(ctx context.Context, search string) ([]*model.User, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockTrackerRepository) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProjectRepository mock methods

func (m *MockTrackerRepository) CreateProject(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockTrackerRepository) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockTrackerRepository) FindProjects(ctx context.Context, scope model.ListScope, filter model.ProjectFilter) ([]*model.Project, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Project), args.Error(1)
}

func (m *MockTrackerRepository) UpdateProject(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockTrackerRepository) DeleteProject(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrackerRepository) AddProjectMember(ctx context.Context, projectID, userID int64) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackerRepository) RemoveProjectMember(ctx context.Context, projectID, userID int64) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

// TaskRepository mock methods

func (m *MockTrackerRepository) CreateTask(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTrackerRepository) GetTask(ctx context.Context, projectID, taskID int64) (*model.Task, error) {
	args := m.Called(ctx, projectID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTrackerRepository) FindTasks(ctx context.Context, scope model.ListScope, filter model.TaskFilter) ([]*model.Task, error) {
	args := m.Called(ctx, scope, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTrackerRepository) UpdateTask(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTrackerRepository) DeleteTask(ctx context.Context, projectID, taskID int64) error {
	args := m.Called(ctx, projectID, taskID)
	return args.Error(0)
}

// CommentRepository mock methods

func (m *MockTrackerRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockTrackerRepository) GetComment(ctx context.Context, taskID, commentID int64) (*model.Comment, error) {
	args := m.Called(ctx, taskID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockTrackerRepository) FindComments(ctx context.Context, scope model.ListScope, taskID int64) ([]*model.Comment, error) {
	args := m.Called(ctx, scope, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockTrackerRepository) UpdateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockTrackerRepository) DeleteComment(ctx context.Context, taskID, commentID int64) error {
	args := m.Called(ctx, taskID, commentID)
	return args.Error(0)
}

// AttachmentRepository mock methods

func (m *MockTrackerRepository) CreateAttachment(ctx context.Context, attachment *model.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockTrackerRepository) GetAttachment(ctx context.Context, taskID, attachmentID int64) (*model.Attachment, error) {
	args := m.Called(ctx, taskID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Attachment), args.Error(1)
}

func (m *MockTrackerRepository) FindAttachments(ctx context.Context, scope model.ListScope, taskID int64) ([]*model.Attachment, error) {
	args := m.Called(ctx, scope, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Attachment), args.Error(1)
}

func (m *MockTrackerRepository) UpdateAttachment(ctx context.Context, attachment *model.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockTrackerRepository) DeleteAttachment(ctx context.Context, taskID, attachmentID int64) error {
	args := m.Called(ctx, taskID, attachmentID)
	return args.Error(0)
}
