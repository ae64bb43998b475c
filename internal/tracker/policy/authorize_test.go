package policy

import (
	"net/http"
	"testing"

	"taskhub/internal/tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID    int64 = 1
	memberID   int64 = 2
	assigneeID int64 = 3
	strangerID int64 = 4
	staffID    int64 = 5
)

func actor(id int64) model.Actor {
	return model.Actor{ID: id, IsStaff: id == staffID}
}

func fixtures() (*model.Project, *model.Task) {
	assignee := assigneeID
	project := &model.Project{ID: 10, Name: "Roadmap", OwnerID: ownerID, MemberIDs: []int64{ownerID, memberID}}
	task := &model.Task{ID: 20, ProjectID: 10, Title: "Fix bug", AssigneeID: &assignee}
	return project, task
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)
	return engine
}

func TestAuthorizeProject(t *testing.T) {
	engine := newEngine(t)
	project, _ := fixtures()

	tests := []struct {
		name    string
		actor   int64
		method  string
		allowed bool
	}{
		{"owner reads", ownerID, http.MethodGet, true},
		{"member reads", memberID, http.MethodGet, true},
		{"stranger cannot read", strangerID, http.MethodGet, false},
		{"assignee of a task is not a project reader", assigneeID, http.MethodGet, false},
		{"owner updates", ownerID, http.MethodPut, true},
		{"member cannot update", memberID, http.MethodPatch, false},
		{"owner deletes", ownerID, http.MethodDelete, true},
		{"member cannot delete", memberID, http.MethodDelete, false},
		{"member creates tasks", memberID, http.MethodPost, true},
		{"stranger cannot create tasks", strangerID, http.MethodPost, false},
		{"staff deletes", staffID, http.MethodDelete, true},
		{"unknown method denied", ownerID, "TRACE", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, engine.AuthorizeProject(actor(tc.actor), tc.method, project))
		})
	}
}

func TestAuthorizeProjectOwnerNotListed(t *testing.T) {
	engine := newEngine(t)
	project := &model.Project{ID: 1, OwnerID: ownerID}

	assert.True(t, engine.AuthorizeProject(actor(ownerID), http.MethodGet, project))
	assert.True(t, engine.AuthorizeProject(actor(ownerID), http.MethodPost, project))
}

func TestAuthorizeTask(t *testing.T) {
	engine := newEngine(t)
	project, task := fixtures()

	tests := []struct {
		name    string
		actor   int64
		method  string
		allowed bool
	}{
		{"owner reads", ownerID, http.MethodGet, true},
		{"member reads", memberID, http.MethodGet, true},
		{"assignee reads", assigneeID, http.MethodGet, true},
		{"stranger cannot read", strangerID, http.MethodGet, false},
		{"member updates", memberID, http.MethodPatch, true},
		{"assignee updates", assigneeID, http.MethodPut, true},
		{"stranger cannot update", strangerID, http.MethodPatch, false},
		{"owner deletes", ownerID, http.MethodDelete, true},
		{"member cannot delete", memberID, http.MethodDelete, false},
		{"assignee cannot delete", assigneeID, http.MethodDelete, false},
		{"member comments", memberID, http.MethodPost, true},
		{"assignee outside project cannot comment", assigneeID, http.MethodPost, false},
		{"staff deletes", staffID, http.MethodDelete, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, engine.AuthorizeTask(actor(tc.actor), tc.method, project, task))
		})
	}
}

func TestAuthorizeTaskWithoutAssignee(t *testing.T) {
	engine := newEngine(t)
	project, task := fixtures()
	task.AssigneeID = nil

	assert.False(t, engine.AuthorizeTask(actor(strangerID), http.MethodPatch, project, task))
	assert.True(t, engine.AuthorizeTask(actor(ownerID), http.MethodPatch, project, task))
}

func TestAuthorizeComment(t *testing.T) {
	engine := newEngine(t)
	project, task := fixtures()
	author := memberID
	comment := &model.Comment{ID: 30, TaskID: task.ID, AuthorID: &author, Body: "hello"}

	tests := []struct {
		name    string
		actor   int64
		method  string
		allowed bool
	}{
		{"owner reads", ownerID, http.MethodGet, true},
		{"assignee outside project cannot read", assigneeID, http.MethodGet, false},
		{"author edits", memberID, http.MethodPatch, true},
		{"project owner cannot edit", ownerID, http.MethodPut, false},
		{"author deletes", memberID, http.MethodDelete, true},
		{"project owner deletes", ownerID, http.MethodDelete, true},
		{"stranger cannot delete", strangerID, http.MethodDelete, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, engine.AuthorizeComment(actor(tc.actor), tc.method, project, task, comment))
		})
	}
}

func TestAuthorizeCommentWithRemovedAuthor(t *testing.T) {
	engine := newEngine(t)
	project, task := fixtures()
	comment := &model.Comment{ID: 30, TaskID: task.ID}

	assert.False(t, engine.AuthorizeComment(actor(memberID), http.MethodPatch, project, task, comment))
	assert.True(t, engine.AuthorizeComment(actor(ownerID), http.MethodDelete, project, task, comment))
}

func TestAuthorizeAttachment(t *testing.T) {
	engine := newEngine(t)
	project, task := fixtures()
	uploader := memberID
	attachment := &model.Attachment{ID: 40, TaskID: task.ID, UploaderID: &uploader, File: "attachments/design.pdf"}

	assert.True(t, engine.AuthorizeAttachment(actor(ownerID), http.MethodGet, project, task, attachment))
	assert.True(t, engine.AuthorizeAttachment(actor(memberID), http.MethodPatch, project, task, attachment))
	assert.False(t, engine.AuthorizeAttachment(actor(ownerID), http.MethodPatch, project, task, attachment))
	assert.True(t, engine.AuthorizeAttachment(actor(ownerID), http.MethodDelete, project, task, attachment))
	assert.False(t, engine.AuthorizeAttachment(actor(strangerID), http.MethodGet, project, task, attachment))
}

func TestAuthorizeMembership(t *testing.T) {
	engine := newEngine(t)
	project, _ := fixtures()

	assert.True(t, engine.AuthorizeMembership(actor(ownerID), ActionWrite, project))
	assert.True(t, engine.AuthorizeMembership(actor(ownerID), ActionDelete, project))
	assert.False(t, engine.AuthorizeMembership(actor(memberID), ActionWrite, project))
	assert.False(t, engine.AuthorizeMembership(actor(memberID), ActionDelete, project))
	assert.True(t, engine.AuthorizeMembership(actor(staffID), ActionDelete, project))
}

func TestAuthorizeActivity(t *testing.T) {
	engine := newEngine(t)

	assert.True(t, engine.AuthorizeActivity(actor(strangerID)))
	assert.False(t, engine.AuthorizeActivity(model.Actor{}))
}

// A user who becomes a member can read but not delete.
func TestMembershipGrantsReadOnly(t *testing.T) {
	engine := newEngine(t)
	project := &model.Project{ID: 1, Name: "Roadmap", OwnerID: ownerID, MemberIDs: []int64{ownerID}}

	assert.False(t, engine.AuthorizeProject(actor(strangerID), http.MethodGet, project))

	project.MemberIDs = append(project.MemberIDs, strangerID)
	assert.True(t, engine.AuthorizeProject(actor(strangerID), http.MethodGet, project))
	assert.False(t, engine.AuthorizeProject(actor(strangerID), http.MethodDelete, project))
}
