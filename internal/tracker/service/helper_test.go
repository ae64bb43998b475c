package service

import (
	"testing"
	"time"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/mocks"
	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/policy"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    int64 = 1
	memberID   int64 = 2
	assigneeID int64 = 3
	strangerID int64 = 4
	staffID    int64 = 5

	projectID int64 = 10
	taskID    int64 = 20
	commentID int64 = 30
)

func newTestService(t *testing.T) (*Service, *mocks.MockTrackerRepository, *mocks.MockActivityRepository) {
	t.Helper()
	engine, err := policy.NewEngine()
	require.NoError(t, err)

	repo := new(mocks.MockTrackerRepository)
	act := new(mocks.MockActivityRepository)
	recorder := activity.NewRecorder(act, nil, time.Second)
	return NewService(repo, act, engine, recorder), repo, act
}

func actor(id int64) model.Actor {
	return model.Actor{ID: id, IsStaff: id == staffID}
}

func allUsers() []*model.User {
	return []*model.User{
		{ID: ownerID, Username: "alice", Email: "alice@example.com"},
		{ID: memberID, Username: "bob", Email: "bob@example.com"},
		{ID: assigneeID, Username: "carol", Email: "carol@example.com"},
		{ID: strangerID, Username: "dave", Email: "dave@example.com"},
		{ID: staffID, Username: "root", Email: "root@example.com", IsStaff: true},
	}
}

// roadmap is owned by alice with bob as member
func roadmap() *model.Project {
	return &model.Project{
		ID:        projectID,
		Name:      "Roadmap",
		OwnerID:   ownerID,
		MemberIDs: []int64{ownerID, memberID},
	}
}

// fixBug is assigned to carol, who is not a project member
func fixBug() *model.Task {
	assignee := assigneeID
	return &model.Task{
		ID:         taskID,
		ProjectID:  projectID,
		Title:      "Fix bug",
		Status:     model.StatusTodo,
		Priority:   model.PriorityMedium,
		AssigneeID: &assignee,
	}
}

func commentBy(author *int64) *model.Comment {
	return &model.Comment{ID: commentID, TaskID: taskID, AuthorID: author, Body: "looks good"}
}

func expectUsers(repo *mocks.MockTrackerRepository) {
	repo.On("GetUsersByIDs", mock.Anything, mock.Anything).Return(allUsers(), nil).Maybe()
}

func expectRoadmap(repo *mocks.MockTrackerRepository) {
	repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
}

func expectFixBug(repo *mocks.MockTrackerRepository) {
	expectRoadmap(repo)
	repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
}

func expectRecord(act *mocks.MockActivityRepository) {
	act.On("CreateActivity", mock.Anything, mock.Anything).Return(nil)
}

func recorded(act *mocks.MockActivityRepository) []*model.ActivityLog {
	var out []*model.ActivityLog
	for _, call := range act.Calls {
		if call.Method == "CreateActivity" {
			out = append(out, call.Arguments.Get(1).(*model.ActivityLog))
		}
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }
