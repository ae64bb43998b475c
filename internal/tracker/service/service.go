package service

import (
	"context"
	"errors"
	"log/slog"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/policy"
	"taskhub/internal/tracker/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict: username or email already taken")
)

type TrackerService interface {
	ResolveActor(ctx context.Context, userID int64) (model.Actor, error)

	Signup(ctx context.Context, req model.SignupReq) (*model.UserSummary, error)
	GetUser(ctx context.Context, actor model.Actor, userID int64) (*model.UserSummary, error)
	SearchUsers(ctx context.Context, actor model.Actor, req model.ListUsersReq) ([]*model.UserSummary, error)
	DeleteUser(ctx context.Context, actor model.Actor, userID int64) error

	ListProjects(ctx context.Context, actor model.Actor, req model.ListProjectsReq) ([]*model.ProjectResponse, error)
	GetProject(ctx context.Context, actor model.Actor, projectID int64) (*model.ProjectResponse, error)
	CreateProject(ctx context.Context, actor model.Actor, req model.CreateProjectReq) (*model.ProjectResponse, error)
	UpdateProject(ctx context.Context, actor model.Actor, req model.UpdateProjectReq) (*model.ProjectResponse, error)
	DeleteProject(ctx context.Context, actor model.Actor, projectID int64) error
	AddMember(ctx context.Context, actor model.Actor, req model.MemberReq) (*model.ProjectResponse, error)
	RemoveMember(ctx context.Context, actor model.Actor, req model.MemberReq) (*model.ProjectResponse, error)

	ListTasks(ctx context.Context, actor model.Actor, req model.ListTasksReq) ([]*model.TaskResponse, error)
	GetTask(ctx context.Context, actor model.Actor, req model.TaskIDReq) (*model.TaskResponse, error)
	CreateTask(ctx context.Context, actor model.Actor, req model.CreateTaskReq) (*model.TaskResponse, error)
	UpdateTask(ctx context.Context, actor model.Actor, req model.UpdateTaskReq) (*model.TaskResponse, error)
	DeleteTask(ctx context.Context, actor model.Actor, req model.TaskIDReq) error

	ListComments(ctx context.Context, actor model.Actor, req model.TaskIDReq) ([]*model.CommentResponse, error)
	GetComment(ctx context.Context, actor model.Actor, req model.CommentIDReq) (*model.CommentResponse, error)
	CreateComment(ctx context.Context, actor model.Actor, req model.CreateCommentReq) (*model.CommentResponse, error)
	UpdateComment(ctx context.Context, actor model.Actor, req model.UpdateCommentReq) (*model.CommentResponse, error)
	DeleteComment(ctx context.Context, actor model.Actor, req model.CommentIDReq) error

	ListAttachments(ctx context.Context, actor model.Actor, req model.TaskIDReq) ([]*model.AttachmentResponse, error)
	GetAttachment(ctx context.Context, actor model.Actor, req model.AttachmentIDReq) (*model.AttachmentResponse, error)
	CreateAttachment(ctx context.Context, actor model.Actor, req model.CreateAttachmentReq) (*model.AttachmentResponse, error)
	UpdateAttachment(ctx context.Context, actor model.Actor, req model.UpdateAttachmentReq) (*model.AttachmentResponse, error)
	DeleteAttachment(ctx context.Context, actor model.Actor, req model.AttachmentIDReq) error

	ListActivity(ctx context.Context, actor model.Actor, req model.ListActivityReq) (*model.ListActivityResp, error)
}

// Service resolves the target, authorizes, mutates and records activity, in that order.
type Service struct {
	Repo     repository.TrackerRepository
	Activity repository.ActivityRepository
	Policy   *policy.Engine
	Recorder *activity.Recorder
	Logger   *slog.Logger
}

func NewService(repo repository.TrackerRepository, activityRepo repository.ActivityRepository, engine *policy.Engine, recorder *activity.Recorder) *Service {
	return &Service{
		Repo:     repo,
		Activity: activityRepo,
		Policy:   engine,
		Recorder: recorder,
		Logger:   slog.Default(),
	}
}

// ResolveActor turns the caller id into a principal. Unknown users are unauthorized.
func (s *Service) ResolveActor(ctx context.Context, userID int64) (model.Actor, error) {
	if userID <= 0 {
		return model.Actor{}, ErrUnauthorized
	}
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Actor{}, ErrUnauthorized
		}
		return model.Actor{}, err
	}
	return model.ActorFromUser(user), nil
}

func (s *Service) record(ctx context.Context, actor model.Actor, description string, projectID, taskID *int64) {
	s.Recorder.Record(ctx, actor.ID, description, projectID, taskID)
}
