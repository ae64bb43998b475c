package service

import (
	"context"
	"net/http"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/model"
)

// ListTasks lists one project's tasks, or every visible task when no project is given.
// Callers outside the project see only what is assigned to them; the list never fails with Forbidden.
func (s *Service) ListTasks(ctx context.Context, actor model.Actor, req model.ListTasksReq) ([]*model.TaskResponse, error) {
	filter := req.ToFilter(actor.ID)

	var project *model.Project
	if req.ProjectID != 0 {
		p, err := s.loadProject(ctx, req.ProjectID)
		if err != nil {
			return nil, err
		}
		project = p
	}
	scope := s.Policy.ScopeTasks(actor, project)

	if project == nil && !scope.Unrestricted && !scope.Empty {
		visible, err := s.Repo.FindProjects(ctx, s.Policy.ScopeProjects(actor), model.ProjectFilter{})
		if err != nil {
			return nil, err
		}
		for _, p := range visible {
			filter.VisibleProjectIDs = append(filter.VisibleProjectIDs, p.ID)
		}
	}

	tasks, err := s.Repo.FindTasks(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	return s.taskResponses(ctx, tasks)
}

func (s *Service) GetTask(ctx context.Context, actor model.Actor, req model.TaskIDReq) (*model.TaskResponse, error) {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeTask(actor, http.MethodGet, project, task) {
		return nil, ErrForbidden
	}
	return s.taskResponse(ctx, task)
}

// CreateTask needs create permission on the parent project. The assignee stays unset unless given.
func (s *Service) CreateTask(ctx context.Context, actor model.Actor, req model.CreateTaskReq) (*model.TaskResponse, error) {
	project, err := s.loadProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeProject(actor, http.MethodPost, project) {
		return nil, ErrForbidden
	}
	if req.AssigneeID != nil {
		if _, err := s.requireUsers(ctx, "assignee_id", *req.AssigneeID); err != nil {
			return nil, err
		}
	}

	task := &model.Task{
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	s.record(ctx, actor, activity.TaskCreated(task.Title), ref(project.ID), ref(task.ID))
	return s.taskResponse(ctx, task)
}

func (s *Service) UpdateTask(ctx context.Context, actor model.Actor, req model.UpdateTaskReq) (*model.TaskResponse, error) {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeTask(actor, updateMethod(req.Partial), project, task) {
		return nil, ErrForbidden
	}
	if req.AssigneeID.Value != nil {
		if _, err := s.requireUsers(ctx, "assignee_id", *req.AssigneeID.Value); err != nil {
			return nil, err
		}
	}

	req.Apply(task)
	if err := s.Repo.UpdateTask(ctx, task); err != nil {
		return nil, notFound(err)
	}

	s.record(ctx, actor, activity.TaskUpdated(task.Title), ref(project.ID), ref(task.ID))
	return s.taskResponse(ctx, task)
}

// DeleteTask removes the task with its comments and attachments.
// The log entry keeps the project reference but not the task's.
func (s *Service) DeleteTask(ctx context.Context, actor model.Actor, req model.TaskIDReq) error {
	project, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return err
	}
	if !s.Policy.AuthorizeTask(actor, http.MethodDelete, project, task) {
		return ErrForbidden
	}

	title := task.Title
	if err := s.Repo.DeleteTask(ctx, project.ID, task.ID); err != nil {
		return notFound(err)
	}

	s.record(ctx, actor, activity.TaskDeleted(title), ref(project.ID), nil)
	return nil
}
