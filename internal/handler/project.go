package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/teamtree-io/teamtree/dao"
	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/internal/payload"
	"github.com/teamtree-io/teamtree/internal/resputil"
	"github.com/teamtree-io/teamtree/pkg/assignment"
	"github.com/teamtree-io/teamtree/pkg/metrics"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name   string
	store  *dao.Store
	engine *assignment.Engine
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name:   "projects",
		store:  conf.Store,
		engine: conf.Engine,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", mgr.List)
	g.POST("", mgr.Create)
	g.GET("/top", mgr.ListTopLevel)
	g.GET("/:id", mgr.GetTree)
	g.PUT("/:id", mgr.Update)
	g.DELETE("/:id", mgr.Delete)
	g.POST("/:id/participants/:employeeID", mgr.AddParticipant)
	g.DELETE("/:id/participants/:employeeID", mgr.RemoveParticipant)
}

type (
	ProjectCreateReq struct {
		Title           string `json:"title" binding:"required"`
		Description     string `json:"description"`
		ParentProjectID *uint  `json:"parentProjectId"`
		MaxParticipants int    `json:"maxParticipants" binding:"required,gt=0"`
	}

	ProjectListReq struct {
		Search           string `form:"search"`
		WithParticipants *bool  `form:"withParticipants"`
	}

	AssignReq struct {
		Force bool `form:"force"`
	}
)

// List godoc
// @Summary List all active projects
// @Description Lists non-deleted projects newest first, optionally filtered by title substring and with member lists embedded
// @Tags Project
// @Accept json
// @Produce json
// @Param search query string false "title substring filter"
// @Param withParticipants query bool false "embed member lists (default true)"
// @Success 200 {object} resputil.Response[[]payload.ProjectWithMembersResp] "project list"
// @Failure 500 {object} resputil.Response[any] "storage failure"
// @Router /v1/projects [get]
func (mgr *ProjectMgr) List(c *gin.Context) {
	var req ProjectListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}
	projects, err := mgr.store.ListProjects(c, req.Search)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}

	if req.WithParticipants != nil && !*req.WithParticipants {
		resputil.Success(c, payload.NewProjectRespList(projects))
		return
	}

	ids := lo.Map(projects, func(p model.Project, _ int) uint { return p.ID })
	membersByProject, err := mgr.store.MembersOfProjects(c, ids)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	resp := lo.Map(projects, func(p model.Project, _ int) payload.ProjectWithMembersResp {
		return payload.ProjectWithMembersResp{
			ProjectResp: payload.NewProjectResp(&p),
			Employees:   payload.NewEmployeeRespList(membersByProject[p.ID]),
		}
	})
	resputil.Success(c, resp)
}

// ListTopLevel godoc
// @Summary List top-level projects
// @Description Lists the active roots of the project forest
// @Tags Project
// @Produce json
// @Success 200 {object} resputil.Response[[]payload.ProjectResp] "top-level projects"
// @Failure 500 {object} resputil.Response[any] "storage failure"
// @Router /v1/projects/top [get]
func (mgr *ProjectMgr) ListTopLevel(c *gin.Context) {
	projects, err := mgr.store.TopLevelProjects(c)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	resputil.Success(c, payload.NewProjectRespList(projects))
}

// Create godoc
// @Summary Create a project
// @Description Creates a project, optionally nested under an existing parent
// @Tags Project
// @Accept json
// @Produce json
// @Param project body ProjectCreateReq true "project fields"
// @Success 200 {object} resputil.Response[payload.ProjectResp] "created project"
// @Failure 400 {object} resputil.Response[any] "invalid request"
// @Failure 404 {object} resputil.Response[any] "parent not found"
// @Router /v1/projects [post]
func (mgr *ProjectMgr) Create(c *gin.Context) {
	var req ProjectCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}
	if req.ParentProjectID != nil {
		parent, err := mgr.store.Project(c, *req.ParentProjectID)
		if err != nil {
			resputil.Error(c, err.Error(), resputil.StorageFailure)
			return
		}
		if parent == nil {
			resputil.HTTPError(c, http.StatusNotFound, "parent project not found", resputil.NotFound)
			return
		}
	}

	project := model.Project{
		Title:           req.Title,
		Description:     req.Description,
		ParentProjectID: req.ParentProjectID,
		MaxParticipants: req.MaxParticipants,
	}
	if err := mgr.store.CreateProject(c, &project); err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	resputil.Success(c, payload.NewProjectResp(&project))
}

// GetTree godoc
// @Summary Get a project with its nested children
// @Description Materializes the subtree rooted at the project, members at every node, soft-deleted nodes excluded
// @Tags Project
// @Produce json
// @Param id path int true "project id"
// @Success 200 {object} resputil.Response[payload.ProjectNodeResp] "project subtree"
// @Failure 404 {object} resputil.Response[any] "project not found"
// @Router /v1/projects/{id} [get]
func (mgr *ProjectMgr) GetTree(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tree, err := mgr.engine.ProjectTree(c, id)
	if err != nil {
		replyError(c, err)
		return
	}
	resputil.Success(c, payload.NewProjectNodeResp(tree))
}

// Update godoc
// @Summary Update a project
// @Description Overwrites title, description, capacity and parent; re-parenting is rejected when it would create a cycle
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "project id"
// @Param project body ProjectCreateReq true "project fields"
// @Success 200 {object} resputil.Response[payload.ProjectResp] "updated project"
// @Failure 400 {object} resputil.Response[any] "invalid parent"
// @Failure 404 {object} resputil.Response[any] "project not found"
// @Router /v1/projects/{id} [put]
func (mgr *ProjectMgr) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ProjectCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}
	if err := mgr.engine.ValidateParent(c, id, req.ParentProjectID); err != nil {
		replyError(c, err)
		return
	}

	project := model.Project{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		ParentProjectID: req.ParentProjectID,
		MaxParticipants: req.MaxParticipants,
	}
	if err := mgr.store.UpdateProject(c, &project); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "project not found", resputil.NotFound)
			return
		}
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	refreshed, err := mgr.store.Project(c, id)
	if err != nil || refreshed == nil {
		resputil.Error(c, "project vanished after update", resputil.StorageFailure)
		return
	}
	resputil.Success(c, payload.NewProjectResp(refreshed))
}

// Delete godoc
// @Summary Delete a project and its subtree
// @Description Soft-deletes the project and all descendants and clears their membership rows; repeating the deletion is a no-op
// @Tags Project
// @Produce json
// @Param id path int true "project id"
// @Success 200 {object} resputil.Response[any] "deleted"
// @Failure 404 {object} resputil.Response[any] "project not found"
// @Router /v1/projects/{id} [delete]
func (mgr *ProjectMgr) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := mgr.engine.DeleteProject(c, id); err != nil {
		replyError(c, err)
		return
	}
	metrics.ProjectDeletions.Inc()
	resputil.Success(c, nil)
}

// AddParticipant godoc
// @Summary Assign an employee to a project
// @Description Runs the assignment checks (capacity, duplicates, rank quotas, subproject prerequisite); force accepts quota and prerequisite violations but never capacity or duplicates
// @Tags Project
// @Produce json
// @Param id path int true "project id"
// @Param employeeID path int true "employee id"
// @Param force query bool false "accept policy violations"
// @Success 200 {object} resputil.Response[payload.ProjectWithMembersResp] "project with refreshed member list"
// @Failure 404 {object} resputil.Response[any] "project or employee not found"
// @Failure 409 {object} resputil.Response[any] "assignment rejected"
// @Router /v1/projects/{id}/participants/{employeeID} [post]
func (mgr *ProjectMgr) AddParticipant(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}
	var req AssignReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}

	snapshot, err := mgr.engine.Assign(c, projectID, employeeID, req.Force)
	if err != nil {
		if rej, isRejection := assignment.AsRejection(err); isRejection {
			metrics.AssignmentDecisions.WithLabelValues(rej.Kind.String()).Inc()
		}
		replyError(c, err)
		return
	}
	outcome := metrics.OutcomeAccepted
	if req.Force {
		outcome = metrics.OutcomeForced
	}
	metrics.AssignmentDecisions.WithLabelValues(outcome).Inc()
	resputil.Success(c, payload.NewProjectWithMembersResp(snapshot))
}

// RemoveParticipant godoc
// @Summary Remove an employee from a project
// @Description Deletes the membership row; removing an absent membership succeeds with no state change
// @Tags Project
// @Produce json
// @Param id path int true "project id"
// @Param employeeID path int true "employee id"
// @Success 200 {object} resputil.Response[any] "removed"
// @Router /v1/projects/{id}/participants/{employeeID} [delete]
func (mgr *ProjectMgr) RemoveParticipant(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(c, "employeeID")
	if !ok {
		return
	}
	if err := mgr.engine.RemoveParticipant(c, projectID, employeeID); err != nil {
		replyError(c, err)
		return
	}
	resputil.Success(c, nil)
}
