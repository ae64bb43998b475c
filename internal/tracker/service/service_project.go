package service

import (
	"context"
	"net/http"
	"slices"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/policy"
)

func (s *Service) ListProjects(ctx context.Context, actor model.Actor, req model.ListProjectsReq) ([]*model.ProjectResponse, error) {
	projects, err := s.Repo.FindProjects(ctx, s.Policy.ScopeProjects(actor), req.ToFilter(actor.ID))
	if err != nil {
		return nil, err
	}
	return s.projectResponses(ctx, projects)
}

func (s *Service) GetProject(ctx context.Context, actor model.Actor, projectID int64) (*model.ProjectResponse, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeProject(actor, http.MethodGet, project) {
		return nil, ErrForbidden
	}
	return s.projectResponse(ctx, project)
}

// CreateProject makes the caller the owner and lists them among the members.
func (s *Service) CreateProject(ctx context.Context, actor model.Actor, req model.CreateProjectReq) (*model.ProjectResponse, error) {
	if _, err := s.requireUsers(ctx, "member_ids", req.MemberIDs...); err != nil {
		return nil, err
	}

	members := []int64{actor.ID}
	for _, id := range req.MemberIDs {
		if !slices.Contains(members, id) {
			members = append(members, id)
		}
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor.ID,
		MemberIDs:   members,
	}
	if err := s.Repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	s.record(ctx, actor, activity.ProjectCreated(project.Name), ref(project.ID), nil)
	return s.projectResponse(ctx, project)
}

func (s *Service) UpdateProject(ctx context.Context, actor model.Actor, req model.UpdateProjectReq) (*model.ProjectResponse, error) {
	project, err := s.loadProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeProject(actor, updateMethod(req.Partial), project) {
		return nil, ErrForbidden
	}
	if req.MemberIDs != nil {
		if _, err := s.requireUsers(ctx, "member_ids", *req.MemberIDs...); err != nil {
			return nil, err
		}
	}

	req.Apply(project)
	if err := s.Repo.UpdateProject(ctx, project); err != nil {
		return nil, notFound(err)
	}

	s.record(ctx, actor, activity.ProjectUpdated(project.Name), ref(project.ID), nil)
	return s.projectResponse(ctx, project)
}

// DeleteProject removes the project tree. The log entry keeps the name but no project reference.
func (s *Service) DeleteProject(ctx context.Context, actor model.Actor, projectID int64) error {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return err
	}
	if !s.Policy.AuthorizeProject(actor, http.MethodDelete, project) {
		return ErrForbidden
	}

	name := project.Name
	if err := s.Repo.DeleteProject(ctx, projectID); err != nil {
		return notFound(err)
	}

	s.record(ctx, actor, activity.ProjectDeleted(name), nil, nil)
	return nil
}

// AddMember is idempotent: adding an existing member succeeds without a log entry.
func (s *Service) AddMember(ctx context.Context, actor model.Actor, req model.MemberReq) (*model.ProjectResponse, error) {
	project, err := s.loadProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeMembership(actor, policy.ActionWrite, project) {
		return nil, ErrForbidden
	}
	users, err := s.requireUsers(ctx, "user_id", req.UserID)
	if err != nil {
		return nil, err
	}

	changed, err := s.Repo.AddProjectMember(ctx, project.ID, req.UserID)
	if err != nil {
		return nil, notFound(err)
	}
	if changed {
		s.record(ctx, actor, activity.MemberAdded(users[req.UserID].Username, project.Name), ref(project.ID), nil)
	}
	return s.reloadProject(ctx, project.ID)
}

// RemoveMember is idempotent for non-members. The owner can never be removed.
func (s *Service) RemoveMember(ctx context.Context, actor model.Actor, req model.MemberReq) (*model.ProjectResponse, error) {
	project, err := s.loadProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !s.Policy.AuthorizeMembership(actor, policy.ActionDelete, project) {
		return nil, ErrForbidden
	}
	if project.IsOwner(req.UserID) {
		return nil, model.NewFieldError("user_id", "the project owner cannot be removed")
	}
	users, err := s.requireUsers(ctx, "user_id", req.UserID)
	if err != nil {
		return nil, err
	}

	changed, err := s.Repo.RemoveProjectMember(ctx, project.ID, req.UserID)
	if err != nil {
		return nil, notFound(err)
	}
	if changed {
		s.record(ctx, actor, activity.MemberRemoved(users[req.UserID].Username, project.Name), ref(project.ID), nil)
	}
	return s.reloadProject(ctx, project.ID)
}

func (s *Service) reloadProject(ctx context.Context, projectID int64) (*model.ProjectResponse, error) {
	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.projectResponse(ctx, project)
}
