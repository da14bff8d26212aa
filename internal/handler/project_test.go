package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/internal/handler"
	"github.com/teamtree-io/teamtree/internal/resputil"
	"github.com/teamtree-io/teamtree/pkg/assignment"
	"github.com/teamtree-io/teamtree/pkg/assignment/assignmenttest"
)

type envelope struct {
	Code resputil.ErrorCode `json:"code"`
	Data json.RawMessage    `json:"data"`
	Msg  string             `json:"msg"`
}

func newProjectRouter() (*gin.Engine, *assignmenttest.MemStore) {
	gin.SetMode(gin.TestMode)
	store := assignmenttest.NewMemStore()
	mgr := handler.NewProjectMgr(&handler.RegisterConfig{
		Engine: assignment.NewEngine(store),
	})
	r := gin.New()
	mgr.RegisterRoutes(r.Group("/v1/projects"))
	return r, store
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w.Code, env
}

func TestAddParticipantEndpoint(t *testing.T) {
	r, store := newProjectRouter()

	project := store.AddProject("proj", nil, 10)
	employee := store.AddEmployee("alice", model.RankUnrestricted)

	status, env := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/v1/projects/%d/participants/%d", project, employee))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, resputil.OK, env.Code)

	var resp struct {
		ID        uint `json:"id"`
		Employees []struct {
			ID uint `json:"id"`
		} `json:"employees"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Equal(t, project, resp.ID)
	require.Len(t, resp.Employees, 1)
	require.Equal(t, employee, resp.Employees[0].ID)
}

func TestAddParticipantQuotaRejectionAndForce(t *testing.T) {
	r, store := newProjectRouter()

	employee := store.AddEmployee("junior", model.RankJunior)
	first := store.AddProject("first", nil, 10)
	store.SeedMembership(first, employee)
	second := store.AddProject("second", nil, 10)

	status, env := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/v1/projects/%d/participants/%d", second, employee))
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, resputil.QuotaExceeded, env.Code)
	require.NotEmpty(t, env.Msg)

	status, env = doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/v1/projects/%d/participants/%d?force=true", second, employee))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, resputil.OK, env.Code)
}

func TestAddParticipantDuplicateRejectedEvenWithForce(t *testing.T) {
	r, store := newProjectRouter()

	project := store.AddProject("proj", nil, 10)
	employee := store.AddEmployee("bob", model.RankUnrestricted)
	store.SeedMembership(project, employee)

	status, env := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/v1/projects/%d/participants/%d?force=true", project, employee))
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, resputil.AlreadyAssigned, env.Code)
}

func TestAddParticipantNotFound(t *testing.T) {
	r, store := newProjectRouter()
	project := store.AddProject("proj", nil, 10)

	status, env := doRequest(t, r, http.MethodPost,
		fmt.Sprintf("/v1/projects/%d/participants/999", project))
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, resputil.NotFound, env.Code)
}

func TestAddParticipantRejectsGarbageID(t *testing.T) {
	r, _ := newProjectRouter()

	status, env := doRequest(t, r, http.MethodPost, "/v1/projects/abc/participants/1")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, resputil.InvalidRequest, env.Code)
}

func TestRemoveParticipantIsIdempotentOverHTTP(t *testing.T) {
	r, store := newProjectRouter()

	project := store.AddProject("proj", nil, 10)
	employee := store.AddEmployee("carol", model.RankUnrestricted)
	store.SeedMembership(project, employee)

	path := fmt.Sprintf("/v1/projects/%d/participants/%d", project, employee)
	status, _ := doRequest(t, r, http.MethodDelete, path)
	require.Equal(t, http.StatusOK, status)
	require.False(t, store.HasMembership(project, employee))

	status, env := doRequest(t, r, http.MethodDelete, path)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, resputil.OK, env.Code)
}

func TestDeleteProjectEndpointCascades(t *testing.T) {
	r, store := newProjectRouter()

	root := store.AddProject("root", nil, 10)
	child := store.AddProject("child", lo.ToPtr(root), 10)
	employee := store.AddEmployee("dave", model.RankUnrestricted)
	store.SeedMembership(child, employee)

	status, _ := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/v1/projects/%d", root))
	require.Equal(t, http.StatusOK, status)
	require.Zero(t, store.MembershipCount())

	// The subtree no longer resolves as a read view.
	status, env := doRequest(t, r, http.MethodGet, fmt.Sprintf("/v1/projects/%d", root))
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, resputil.NotFound, env.Code)

	// Deleting again is still success.
	status, _ = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/v1/projects/%d", root))
	require.Equal(t, http.StatusOK, status)
}

func TestGetTreeEndpoint(t *testing.T) {
	r, store := newProjectRouter()

	root := store.AddProject("root", nil, 10)
	child := store.AddProject("child", lo.ToPtr(root), 10)
	member := store.AddEmployee("erin", model.RankUnrestricted)
	store.SeedMembership(child, member)

	status, env := doRequest(t, r, http.MethodGet, fmt.Sprintf("/v1/projects/%d", root))
	require.Equal(t, http.StatusOK, status)

	var node struct {
		ID       uint `json:"id"`
		Children []struct {
			ID        uint `json:"id"`
			Employees []struct {
				Name string `json:"name"`
			} `json:"employees"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &node))
	require.Equal(t, root, node.ID)
	require.Len(t, node.Children, 1)
	require.Equal(t, child, node.Children[0].ID)
	require.Len(t, node.Children[0].Employees, 1)
	require.Equal(t, "erin", node.Children[0].Employees[0].Name)
}
