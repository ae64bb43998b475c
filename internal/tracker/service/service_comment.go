package service

import (
	"context"
	"net/http"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/model"
)

func (s *Service) loadComment(ctx context.Context, projectID, taskID, commentID int64) (*model.Project, *model.Task, *model.Comment, error) {
	project, task, err := s.loadTask(ctx, projectID, taskID)
	if err != nil {
		return nil, nil, nil, err
	}
	comment, err := s.Repo.GetComment(ctx, task.ID, commentID)
	if err != nil {
		return nil, nil, nil, notFound(err)
	}
	return project, task, comment, nil
}

// ListComments returns nothing, rather than Forbidden, to callers outside the project.
func (s *Service) ListComments(ctx context.Context, actor model.Actor, req model.TaskIDReq) ([]*model.CommentResponse, error) {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, err
	}
	comments, err := s.Repo.FindComments(ctx, s.Policy.ScopeTaskChildren(actor, project), task.ID)
	if err != nil {
		return nil, err
	}
	return s.commentResponses(ctx, comments)
}

func (s *Service) GetComment(ctx context.Context, actor model.Actor, req model.CommentIDReq) (*model.CommentResponse, error) {
	project, task, comment, err := s.loadComment(ctx, req.ProjectID, req.TaskID, req.CommentID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeComment(actor, http.MethodGet, project, task, comment) {
		return nil, ErrForbidden
	}
	return s.commentResponse(ctx, comment)
}

func (s *Service) CreateComment(ctx context.Context, actor model.Actor, req model.CreateCommentReq) (*model.CommentResponse, error) {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeTask(actor, http.MethodPost, project, task) {
		return nil, ErrForbidden
	}

	comment := &model.Comment{
		TaskID:   task.ID,
		AuthorID: ref(actor.ID),
		Body:     req.Body,
	}
	if err := s.Repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.record(ctx, actor, activity.CommentCreated(task.Title), ref(project.ID), ref(task.ID))
	return s.commentResponse(ctx, comment)
}

// UpdateComment is reserved to the author; the author itself never changes.
func (s *Service) UpdateComment(ctx context.Context, actor model.Actor, req model.UpdateCommentReq) (*model.CommentResponse, error) {
	project, task, comment, err := s.loadComment(ctx, req.ProjectID, req.TaskID, req.CommentID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeComment(actor, updateMethod(req.Partial), project, task, comment) {
		return nil, ErrForbidden
	}

	if req.Body != nil {
		comment.Body = *req.Body
	}
	if err := s.Repo.UpdateComment(ctx, comment); err != nil {
		return nil, notFound(err)
	}

	s.record(ctx, actor, activity.CommentUpdated(task.Title), ref(project.ID), ref(task.ID))
	return s.commentResponse(ctx, comment)
}

func (s *Service) DeleteComment(ctx context.Context, actor model.Actor, req model.CommentIDReq) error {
	project, task, comment, err := s.loadComment(ctx, req.ProjectID, req.TaskID, req.CommentID)
	if err != nil {
		return err
	}
	if !s.Policy.AuthorizeComment(actor, http.MethodDelete, project, task, comment) {
		return ErrForbidden
	}

	if err := s.Repo.DeleteComment(ctx, task.ID, comment.ID); err != nil {
		return notFound(err)
	}

	s.record(ctx, actor, activity.CommentDeleted(task.Title), ref(project.ID), ref(task.ID))
	return nil
}

func (s *Service) commentResponse(ctx context.Context, comment *model.Comment) (*model.CommentResponse, error) {
	out, err := s.commentResponses(ctx, []*model.Comment{comment})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}
