package service

import (
	"context"
	"net/http"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/model"
)

func (s *Service) loadAttachment(ctx context.Context, projectID, taskID, attachmentID int64) (*model.Project, *model.Task, *model.Attachment, error) {
	project, task, err := s.loadTask(ctx, projectID, taskID)
	if err != nil {
		return nil, nil, nil, err
	}
	attachment, err := s.Repo.GetAttachment(ctx, task.ID, attachmentID)
	if err != nil {
		return nil, nil, nil, notFound(err)
	}
	return project, task, attachment, nil
}

func (s *Service) ListAttachments(ctx context.Context, actor model.Actor, req model.TaskIDReq) ([]*model.AttachmentResponse, error) {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, err
	}
	attachments, err := s.Repo.FindAttachments(ctx, s.Policy.ScopeTaskChildren(actor, project), task.ID)
	if err != nil {
		return nil, err
	}
	return s.attachmentResponses(ctx, attachments)
}

func (s *Service) GetAttachment(ctx context.Context, actor model.Actor, req model.AttachmentIDReq) (*model.AttachmentResponse, error) {
	project, task, attachment, err := s.loadAttachment(ctx, req.ProjectID, req.TaskID, req.AttachmentID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeAttachment(actor, http.MethodGet, project, task, attachment) {
		return nil, ErrForbidden
	}
	return s.attachmentResponse(ctx, attachment)
}

// CreateAttachment stores the file reference as given; the binary lives elsewhere.
func (s *Service) CreateAttachment(ctx context.Context, actor model.Actor, req model.CreateAttachmentReq) (*model.AttachmentResponse, error) {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeTask(actor, http.MethodPost, project, task) {
		return nil, ErrForbidden
	}

	attachment := &model.Attachment{
		TaskID:      task.ID,
		File:        req.File,
		Description: req.Description,
		UploaderID:  ref(actor.ID),
	}
	if err := s.Repo.CreateAttachment(ctx, attachment); err != nil {
		return nil, err
	}

	s.record(ctx, actor, activity.AttachmentCreated(task.Title), ref(project.ID), ref(task.ID))
	return s.attachmentResponse(ctx, attachment)
}

func (s *Service) UpdateAttachment(ctx context.Context, actor model.Actor, req model.UpdateAttachmentReq) (*model.AttachmentResponse, error) {
	project, task, attachment, err := s.loadAttachment(ctx, req.ProjectID, req.TaskID, req.AttachmentID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeAttachment(actor, updateMethod(req.Partial), project, task, attachment) {
		return nil, ErrForbidden
	}

	req.Apply(attachment)
	if err := s.Repo.UpdateAttachment(ctx, attachment); err != nil {
		return nil, notFound(err)
	}

	s.record(ctx, actor, activity.AttachmentUpdated(task.Title), ref(project.ID), ref(task.ID))
	return s.attachmentResponse(ctx, attachment)
}

func (s *Service) DeleteAttachment(ctx context.Context, actor model.Actor, req model.AttachmentIDReq) error {
	project, task, attachment, err := s.loadAttachment(ctx, req.ProjectID, req.TaskID, req.AttachmentID)
	if err != nil {
		return err
	}
	if !s.Policy.AuthorizeAttachment(actor, http.MethodDelete, project, task, attachment) {
		return ErrForbidden
	}

	if err := s.Repo.DeleteAttachment(ctx, task.ID, attachment.ID); err != nil {
		return notFound(err)
	}

	s.record(ctx, actor, activity.AttachmentDeleted(task.Title), ref(project.ID), ref(task.ID))
	return nil
}

func (s *Service) attachmentResponse(ctx context.Context, attachment *model.Attachment) (*model.AttachmentResponse, error) {
	out, err := s.attachmentResponses(ctx, []*model.Attachment{attachment})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}
