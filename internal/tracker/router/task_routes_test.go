package router

import (
	"net/http"
	"testing"
	"time"

	"taskhub/internal/tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestTaskRoutes covers the "Fix bug" task of Roadmap, assigned to carol who is not a member.
func TestTaskRoutes(t *testing.T) {
	taskPath := "/api/v1/projects/10/tasks/20"

	t.Run("member creates Fix bug and return 201", func(t *testing.T) {
		e, repo, act := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
			return task.Title == "Fix bug" && task.Status == model.StatusTodo && task.Priority == model.PriorityHigh
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Task).ID = taskID
		}).Return(nil)

		payload := map[string]interface{}{"title": "Fix bug", "priority": "high"}
		rec := PerformRequest(e, http.MethodPost, "/api/v1/projects/10/tasks", payload, as(memberID))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decode[model.TaskResponse](t, rec)
		assert.Equal(t, taskID, got.ID)
		assert.Nil(t, got.Assignee)
		assert.Equal(t, []string{"Tạo công việc mới: Fix bug"}, act.Descriptions())
	})

	t.Run("invalid status returns 400", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodPost, "/api/v1/projects/10/tasks", map[string]interface{}{"title": "x", "status": "LATER"}, as(memberID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[model.ErrorResponse](t, rec)
		assert.Contains(t, body.Error.Fields, "status")
	})

	t.Run("assignee outside project reads the task", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)

		rec := PerformRequest(e, http.MethodGet, taskPath, nil, as(assigneeID))
		assert.Equal(t, http.StatusOK, rec.Code)
		got := decode[model.TaskResponse](t, rec)
		assert.Equal(t, "carol", got.Assignee.Username)
	})

	t.Run("stranger reading the task returns 403", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)

		rec := PerformRequest(e, http.MethodGet, taskPath, nil, as(strangerID))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("patch with explicit null clears due date only", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		due := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		task := fixBug()
		task.DueDate = &due
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(task, nil)
		repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(updated *model.Task) bool {
			return updated.DueDate == nil && updated.AssigneeID != nil && *updated.AssigneeID == assigneeID && updated.Title == "Fix bug"
		})).Return(nil)

		rec := PerformRequest(e, http.MethodPatch, taskPath, map[string]interface{}{"due_date": nil}, as(memberID))
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		repo.AssertExpectations(t)
	})

	t.Run("member cannot delete", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)

		rec := PerformRequest(e, http.MethodDelete, taskPath, nil, as(memberID))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		repo.AssertNotCalled(t, "DeleteTask", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner deletes and return 204", func(t *testing.T) {
		e, repo, act := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
		repo.On("DeleteTask", mock.Anything, projectID, taskID).Return(nil)

		rec := PerformRequest(e, http.MethodDelete, taskPath, nil, as(ownerID))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"Xóa công việc: Fix bug"}, act.Descriptions())
	})

	t.Run("delete targets the URL keys even when the body names others", func(t *testing.T) {
		e, repo, act := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
		repo.On("DeleteTask", mock.Anything, projectID, taskID).Return(nil)

		body := map[string]interface{}{"ProjectID": 77, "TaskID": 88, "project_id": 77, "task_id": 88}
		rec := PerformRequest(e, http.MethodDelete, taskPath, body, as(ownerID))
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		repo.AssertCalled(t, "DeleteTask", mock.Anything, projectID, taskID)
		repo.AssertNotCalled(t, "GetProject", mock.Anything, int64(77))
		assert.Equal(t, []string{"Xóa công việc: Fix bug"}, act.Descriptions())
	})

	t.Run("patch keeps the URL task when the body names another", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
		repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
			return task.ID == taskID && task.ProjectID == projectID && task.Title == "Fix bug now"
		})).Return(nil)

		body := map[string]interface{}{"title": "Fix bug now", "TaskID": 88, "ProjectID": 77}
		rec := PerformRequest(e, http.MethodPatch, taskPath, body, as(memberID))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		repo.AssertNotCalled(t, "GetTask", mock.Anything, int64(77), int64(88))
	})

	t.Run("list filters by assignee me and due date range", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("FindTasks", mock.Anything, model.ListScope{ViewerID: assigneeID}, mock.MatchedBy(func(f model.TaskFilter) bool {
			return f.AssigneeID != nil && *f.AssigneeID == assigneeID &&
				f.DueAfter.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) &&
				f.DueBefore.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))
		})).Return([]*model.Task{fixBug()}, nil)

		rec := PerformRequest(e, http.MethodGet,
			"/api/v1/projects/10/tasks?assignee=me&due_date_after=2026-10-01&due_date_before=2026-10-31",
			nil, as(assigneeID))
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Len(t, decode[[]model.TaskResponse](t, rec), 1)
	})

	t.Run("malformed due date returns 400", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/tasks?due_date_after=next-week", nil, as(memberID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cross-project list", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("FindProjects", mock.Anything, model.ListScope{ViewerID: memberID}, model.ProjectFilter{}).
			Return([]*model.Project{roadmap()}, nil)
		repo.On("FindTasks", mock.Anything, model.ListScope{ViewerID: memberID}, mock.Anything).
			Return([]*model.Task{fixBug()}, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/tasks", nil, as(memberID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTaskChildRoutes(t *testing.T) {
	t.Run("assignee outside project cannot comment", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)

		rec := PerformRequest(e, http.MethodPost, "/api/v1/projects/10/tasks/20/comments", map[string]interface{}{"body": "hi"}, as(assigneeID))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("member comments and return 201", func(t *testing.T) {
		e, repo, act := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
		repo.On("CreateComment", mock.Anything, mock.Anything).Return(nil)

		rec := PerformRequest(e, http.MethodPost, "/api/v1/projects/10/tasks/20/comments", map[string]interface{}{"body": "on it"}, as(memberID))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, []string{"Bình luận về công việc: Fix bug"}, act.Descriptions())
	})

	t.Run("member lists attachments", func(t *testing.T) {
		e, repo, _ := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
		repo.On("FindAttachments", mock.Anything, model.ListScope{ViewerID: memberID, ParentVisible: true}, taskID).
			Return([]*model.Attachment{{ID: 40, TaskID: taskID, File: "s3://bucket/log.txt"}}, nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects/10/tasks/20/attachments", nil, as(memberID))
		assert.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]model.AttachmentResponse](t, rec)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].Uploader)
	})

	t.Run("attachment without file returns 400", func(t *testing.T) {
		e, _, _ := SetupServer(t)

		rec := PerformRequest(e, http.MethodPost, "/api/v1/projects/10/tasks/20/attachments", map[string]interface{}{"description": "x"}, as(memberID))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestActivityRoutes(t *testing.T) {
	t.Run("any authenticated user reads the project log", func(t *testing.T) {
		e, repo, act := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		actorID := ownerID
		act.On("FindActivity", mock.Anything, mock.MatchedBy(func(f model.ActivityFilter) bool {
			return *f.ProjectID == projectID && f.TaskID == nil && f.Page == 1 && f.Size == 5
		})).Return([]*model.ActivityLog{
			{ID: 1, ActorID: &actorID, ActionDescription: "Tạo dự án mới: Roadmap", Timestamp: time.Now()},
		}, int64(1), nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects/10/activity?size=5", nil, as(strangerID))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		got := decode[model.ListActivityResp](t, rec)
		assert.Equal(t, int64(1), got.TotalCount)
		assert.Equal(t, "alice", got.Data[0].Actor.Username)
	})

	t.Run("task log", func(t *testing.T) {
		e, repo, act := SetupServer(t)
		repo.On("GetProject", mock.Anything, projectID).Return(roadmap(), nil)
		repo.On("GetTask", mock.Anything, projectID, taskID).Return(fixBug(), nil)
		act.On("FindActivity", mock.Anything, mock.MatchedBy(func(f model.ActivityFilter) bool {
			return f.ProjectID == nil && *f.TaskID == taskID
		})).Return([]*model.ActivityLog{}, int64(0), nil)

		rec := PerformRequest(e, http.MethodGet, "/api/v1/projects/10/tasks/20/activity", nil, as(memberID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
