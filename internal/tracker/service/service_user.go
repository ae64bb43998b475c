package service

import (
	"context"
	"errors"
	"fmt"

	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/repository"

	"golang.org/x/crypto/bcrypt"
)

// Signup registers a user. Username and email must be unused.
func (s *Service) Signup(ctx context.Context, req model.SignupReq) (*model.UserSummary, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	s.Logger.Info("user signed up", "user_id", user.ID, "username", user.Username)
	return user.Summary(), nil
}

func (s *Service) GetUser(ctx context.Context, actor model.Actor, userID int64) (*model.UserSummary, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return user.Summary(), nil
}

func (s *Service) SearchUsers(ctx context.Context, actor model.Actor, req model.ListUsersReq) ([]*model.UserSummary, error) {
	users, err := s.Repo.FindUsers(ctx, req.Search)
	if err != nil {
		return nil, err
	}
	out := make([]*model.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return out, nil
}

// DeleteUser removes an account. Staff may remove anyone, everyone else only themselves.
// Owned projects go with the user; comments, attachments, assignments and log entries stay
// with their reference cleared.
func (s *Service) DeleteUser(ctx context.Context, actor model.Actor, userID int64) error {
	if !actor.IsStaff && actor.ID != userID {
		return ErrForbidden
	}
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		return notFound(err)
	}
	if err := s.Repo.DeleteUser(ctx, userID); err != nil {
		return notFound(err)
	}

	s.Logger.Info("user removed", "user_id", userID, "caller_id", actor.ID)
	return nil
}
