package payload

import (
	"time"

	"github.com/samber/lo"

	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

// Response shapes shared between handlers. Endpoint-specific request types
// stay next to their handler in /internal/handler/xxx.go.

type (
	EmployeeResp struct {
		ID           uint      `json:"id"`
		Name         string    `json:"name"`
		Rank         uint8     `json:"rank"`
		RegisteredAt time.Time `json:"registeredAt"`
	}

	ProjectResp struct {
		ID              uint      `json:"id"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		ParentProjectID *uint     `json:"parentProjectId"`
		MaxParticipants int       `json:"maxParticipants"`
		CreatedAt       time.Time `json:"createdAt"`
	}

	ProjectWithMembersResp struct {
		ProjectResp
		Employees []EmployeeResp `json:"employees"`
	}

	ProjectNodeResp struct {
		ProjectWithMembersResp
		Children []ProjectNodeResp `json:"children"`
	}
)

func NewEmployeeResp(e *model.Employee) EmployeeResp {
	return EmployeeResp{
		ID:           e.ID,
		Name:         e.Name,
		Rank:         e.Rank,
		RegisteredAt: e.RegisteredAt,
	}
}

func NewProjectResp(p *model.Project) ProjectResp {
	return ProjectResp{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		ParentProjectID: p.ParentProjectID,
		MaxParticipants: p.MaxParticipants,
		CreatedAt:       p.CreatedAt,
	}
}

func NewProjectRespList(projects []model.Project) []ProjectResp {
	return lo.Map(projects, func(p model.Project, _ int) ProjectResp {
		return NewProjectResp(&p)
	})
}

func NewEmployeeRespList(employees []model.Employee) []EmployeeResp {
	return lo.Map(employees, func(e model.Employee, _ int) EmployeeResp {
		return NewEmployeeResp(&e)
	})
}

func NewProjectWithMembersResp(snapshot *assignment.ProjectWithMembers) ProjectWithMembersResp {
	return ProjectWithMembersResp{
		ProjectResp: NewProjectResp(&snapshot.Project),
		Employees:   NewEmployeeRespList(snapshot.Members),
	}
}

func NewProjectNodeResp(node *assignment.ProjectNode) ProjectNodeResp {
	return ProjectNodeResp{
		ProjectWithMembersResp: ProjectWithMembersResp{
			ProjectResp: NewProjectResp(&node.Project),
			Employees:   NewEmployeeRespList(node.Members),
		},
		Children: lo.Map(node.Children, func(child *assignment.ProjectNode, _ int) ProjectNodeResp {
			return NewProjectNodeResp(child)
		}),
	}
}
