package router

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/handler"
	"taskhub/internal/tracker/mocks"
	"taskhub/internal/tracker/model"
	"taskhub/internal/tracker/policy"
	"taskhub/internal/tracker/service"

	"github.com/labstack/echo/v4"
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
)

// SetupServer wires the real router, handlers, service and policy engine over mocked stores.
func SetupServer(t *testing.T) (*echo.Echo, *mocks.MockTrackerRepository, *mocks.MockActivityRepository) {
	t.Helper()
	engine, err := policy.NewEngine()
	require.NoError(t, err)

	repo := new(mocks.MockTrackerRepository)
	act := new(mocks.MockActivityRepository)
	svc := service.NewService(repo, act, engine, activity.NewRecorder(act, nil, time.Second))

	e := echo.New()
	RegisterRoutes(e, handler.NewTrackerHandler(svc), svc)

	for _, u := range users() {
		repo.On("GetUser", mock.Anything, u.ID).Return(u, nil).Maybe()
	}
	repo.On("GetUser", mock.Anything, mock.Anything).Return(nil, errNotFound()).Maybe()
	repo.On("GetUsersByIDs", mock.Anything, mock.Anything).Return(users(), nil).Maybe()
	act.On("CreateActivity", mock.Anything, mock.Anything).Return(nil).Maybe()
	return e, repo, act
}

func PerformRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(b))
	} else {
		bodyReader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func as(id int64) map[string]string {
	return map[string]string{handler.HeaderUserID: strconv.FormatInt(id, 10)}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func users() []*model.User {
	return []*model.User{
		{ID: ownerID, Username: "alice", Email: "alice@example.com"},
		{ID: memberID, Username: "bob", Email: "bob@example.com"},
		{ID: assigneeID, Username: "carol", Email: "carol@example.com"},
		{ID: strangerID, Username: "dave", Email: "dave@example.com"},
		{ID: staffID, Username: "root", Email: "root@example.com", IsStaff: true},
	}
}

func roadmap() *model.Project {
	return &model.Project{ID: projectID, Name: "Roadmap", OwnerID: ownerID, MemberIDs: []int64{ownerID, memberID}}
}

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
