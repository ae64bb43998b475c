package service

import (
	"context"

	"taskhub/internal/tracker/model"
)

// ListActivity pages through a project's log, or a task's when TaskID is set, newest first.
// Any authenticated caller may read it as long as the target exists.
func (s *Service) ListActivity(ctx context.Context, actor model.Actor, req model.ListActivityReq) (*model.ListActivityResp, error) {
	if !s.Policy.AuthorizeActivity(actor) {
		return nil, ErrUnauthorized
	}

	filter := model.ActivityFilter{Page: req.Page, Size: req.Size}
	if req.TaskID != 0 {
		_, task, err := s.loadTask(ctx, req.ProjectID, req.TaskID)
		if err != nil {
			return nil, err
		}
		filter.TaskID = ref(task.ID)
	} else {
		project, err := s.loadProject(ctx, req.ProjectID)
		if err != nil {
			return nil, err
		}
		filter.ProjectID = ref(project.ID)
	}

	entries, total, err := s.Activity.FindActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	var actorIDs []int64
	for _, e := range entries {
		if e.ActorID != nil {
			actorIDs = append(actorIDs, *e.ActorID)
		}
	}
	users, err := s.usersByID(ctx, actorIDs...)
	if err != nil {
		return nil, err
	}

	data := make([]*model.ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, &model.ActivityLogResponse{
			ID:                e.ID,
			ActionDescription: e.ActionDescription,
			Actor:             summaryOf(users, e.ActorID),
			Project:           e.ProjectID,
			Task:              e.TaskID,
			Timestamp:         e.Timestamp,
		})
	}

	return &model.ListActivityResp{
		Data:       data,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}, nil
}
