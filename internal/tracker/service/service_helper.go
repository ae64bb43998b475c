package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/repository"
)

func ref(id int64) *int64 {
	return &id
}

func updateMethod(partial bool) string {
	if partial {
		return http.MethodPatch
	}
	return http.MethodPut
}

// notFound translates a repository miss into the service sentinel
func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// loadProject resolves the project or returns ErrNotFound
func (s *Service) loadProject(ctx context.Context, projectID int64) (*model.Project, error) {
	project, err := s.Repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, notFound(err)
	}
	return project, nil
}

// loadTask resolves project then task by the hierarchical key
func (s *Service) loadTask(ctx context.Context, projectID, taskID int64) (*model.Project, *model.Task, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	task, err := s.Repo.GetTask(ctx, projectID, taskID)
	if err != nil {
		return nil, nil, notFound(err)
	}
	return project, task, nil
}

// requireUsers fails with a field error when any id does not reference a stored user
func (s *Service) requireUsers(ctx context.Context, field string, ids ...int64) (map[int64]*model.User, error) {
	users, err := s.usersByID(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := users[id]; !ok {
			return nil, model.NewFieldError(field, fmt.Sprintf("user %d does not exist", id))
		}
	}
	return users, nil
}

// usersByID loads the distinct non-zero ids in one round trip
func (s *Service) usersByID(ctx context.Context, ids ...int64) (map[int64]*model.User, error) {
	wanted := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != 0 && !slices.Contains(wanted, id) {
			wanted = append(wanted, id)
		}
	}
	byID := make(map[int64]*model.User, len(wanted))
	if len(wanted) == 0 {
		return byID, nil
	}

	users, err := s.Repo.GetUsersByIDs(ctx, wanted)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

func summaryOf(users map[int64]*model.User, id *int64) *model.UserSummary {
	if id == nil {
		return nil
	}
	return users[*id].Summary()
}

func (s *Service) projectResponses(ctx context.Context, projects []*model.Project) ([]*model.ProjectResponse, error) {
	var ids []int64
	for _, p := range projects {
		ids = append(ids, p.OwnerID)
		ids = append(ids, p.MemberIDs...)
	}
	users, err := s.usersByID(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		members := make([]*model.UserSummary, 0, len(p.MemberIDs))
		for _, id := range p.MemberIDs {
			if u, ok := users[id]; ok {
				members = append(members, u.Summary())
			}
		}
		out = append(out, &model.ProjectResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Owner:       users[p.OwnerID].Summary(),
			Members:     members,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return out, nil
}

func (s *Service) projectResponse(ctx context.Context, project *model.Project) (*model.ProjectResponse, error) {
	out, err := s.projectResponses(ctx, []*model.Project{project})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (s *Service) taskResponses(ctx context.Context, tasks []*model.Task) ([]*model.TaskResponse, error) {
	var ids []int64
	for _, t := range tasks {
		if t.AssigneeID != nil {
			ids = append(ids, *t.AssigneeID)
		}
	}
	users, err := s.usersByID(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, &model.TaskResponse{
			ID:          t.ID,
			Project:     t.ProjectID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
			DueDate:     t.DueDate,
			Assignee:    summaryOf(users, t.AssigneeID),
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}
	return out, nil
}

func (s *Service) taskResponse(ctx context.Context, task *model.Task) (*model.TaskResponse, error) {
	out, err := s.taskResponses(ctx, []*model.Task{task})
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (s *Service) commentResponses(ctx context.Context, comments []*model.Comment) ([]*model.CommentResponse, error) {
	var ids []int64
	for _, c := range comments {
		if c.AuthorID != nil {
			ids = append(ids, *c.AuthorID)
		}
	}
	users, err := s.usersByID(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, &model.CommentResponse{
			ID:        c.ID,
			Task:      c.TaskID,
			Body:      c.Body,
			Author:    summaryOf(users, c.AuthorID),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out, nil
}

func (s *Service) attachmentResponses(ctx context.Context, attachments []*model.Attachment) ([]*model.AttachmentResponse, error) {
	var ids []int64
	for _, a := range attachments {
		if a.UploaderID != nil {
			ids = append(ids, *a.UploaderID)
		}
	}
	users, err := s.usersByID(ctx, ids...)
	if err != nil {
		return nil, err
	}

	out := make([]*model.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, &model.AttachmentResponse{
			ID:          a.ID,
			Task:        a.TaskID,
			File:        a.File,
			Description: a.Description,
			Uploader:    summaryOf(users, a.UploaderID),
			UploadedAt:  a.UploadedAt,
		})
	}
	return out, nil
}
