package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/teamtree-io/teamtree/dao"
	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/internal/payload"
	"github.com/teamtree-io/teamtree/internal/resputil"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewEmployeeMgr)
}

type EmployeeMgr struct {
	name  string
	store *dao.Store
}

func NewEmployeeMgr(conf *RegisterConfig) Manager {
	return &EmployeeMgr{
		name:  "employees",
		store: conf.Store,
	}
}

func (mgr *EmployeeMgr) GetName() string { return mgr.name }

func (mgr *EmployeeMgr) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", mgr.List)
	g.POST("", mgr.Create)
	g.PUT("/:id", mgr.Update)
	g.DELETE("/:id", mgr.Delete)
}

type EmployeeCreateReq struct {
	Name string `json:"name" binding:"required"`
	Rank uint8  `json:"rank" binding:"required,min=1,max=4"`
}

// List godoc
// @Summary List active employees
// @Tags Employee
// @Produce json
// @Success 200 {object} resputil.Response[[]payload.EmployeeResp] "employee list"
// @Failure 500 {object} resputil.Response[any] "storage failure"
// @Router /v1/employees [get]
func (mgr *EmployeeMgr) List(c *gin.Context) {
	employees, err := mgr.store.ListEmployees(c)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	resputil.Success(c, payload.NewEmployeeRespList(employees))
}

// Create godoc
// @Summary Create an employee
// @Description Rank must be 1 (unrestricted) through 4 (most restricted)
// @Tags Employee
// @Accept json
// @Produce json
// @Param employee body EmployeeCreateReq true "employee fields"
// @Success 200 {object} resputil.Response[payload.EmployeeResp] "created employee"
// @Failure 400 {object} resputil.Response[any] "invalid request"
// @Router /v1/employees [post]
func (mgr *EmployeeMgr) Create(c *gin.Context) {
	var req EmployeeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}
	employee := model.Employee{
		Name: req.Name,
		Rank: req.Rank,
	}
	if err := mgr.store.CreateEmployee(c, &employee); err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	resputil.Success(c, payload.NewEmployeeResp(&employee))
}

// Update godoc
// @Summary Update an employee's name and rank
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path int true "employee id"
// @Param employee body EmployeeCreateReq true "employee fields"
// @Success 200 {object} resputil.Response[payload.EmployeeResp] "updated employee"
// @Failure 404 {object} resputil.Response[any] "employee not found"
// @Router /v1/employees/{id} [put]
func (mgr *EmployeeMgr) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req EmployeeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, err.Error(), resputil.InvalidRequest)
		return
	}
	employee := model.Employee{
		ID:   id,
		Name: req.Name,
		Rank: req.Rank,
	}
	if err := mgr.store.UpdateEmployee(c, &employee); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.HTTPError(c, http.StatusNotFound, "employee not found", resputil.NotFound)
			return
		}
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	refreshed, err := mgr.store.Employee(c, id)
	if err != nil || refreshed == nil {
		resputil.Error(c, "employee vanished after update", resputil.StorageFailure)
		return
	}
	resputil.Success(c, payload.NewEmployeeResp(refreshed))
}

// Delete godoc
// @Summary Soft-delete an employee
// @Description Marks the employee deleted; their memberships stop counting toward any quota
// @Tags Employee
// @Produce json
// @Param id path int true "employee id"
// @Success 200 {object} resputil.Response[any] "deleted"
// @Router /v1/employees/{id} [delete]
func (mgr *EmployeeMgr) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := mgr.store.MarkEmployeeDeleted(c, id); err != nil {
		resputil.Error(c, err.Error(), resputil.StorageFailure)
		return
	}
	resputil.Success(c, nil)
}
