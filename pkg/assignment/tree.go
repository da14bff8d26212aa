package assignment

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/teamtree-io/teamtree/dao/model"
)

// ProjectNode is one node of a materialized project subtree: the project,
// its member list, and its direct children, recursively.
type ProjectNode struct {
	Project  model.Project
	Members  []model.Employee
	Children []*ProjectNode
}

// ProjectTree materializes the subtree rooted at rootID with members at
// every node, excluding soft-deleted projects at every level. The subtree
// ids are fetched once, records and members are loaded in two batches, and
// the nesting is assembled in memory by grouping on the parent id — no query
// per tree level.
func (e *Engine) ProjectTree(ctx context.Context, rootID uint) (*ProjectNode, error) {
	ids, err := e.store.SubtreeIDs(ctx, rootID)
	if err != nil {
		return nil, storage(err)
	}

	projects, err := e.store.ProjectsByIDs(ctx, ids)
	if err != nil {
		return nil, storage(err)
	}
	membersByProject, err := e.store.MembersOfProjects(ctx, ids)
	if err != nil {
		return nil, storage(err)
	}

	nodes := lo.SliceToMap(projects, func(p model.Project) (uint, *ProjectNode) {
		return p.ID, &ProjectNode{Project: p, Members: membersByProject[p.ID]}
	})
	root, ok := nodes[rootID]
	if !ok {
		return nil, reject(KindNotFound, "project %d not found", rootID)
	}

	for _, node := range nodes {
		parentID := node.Project.ParentProjectID
		if parentID == nil || node.Project.ID == rootID {
			continue
		}
		if parent, ok := nodes[*parentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	// Map iteration order is random; keep sibling order stable for callers.
	for _, node := range nodes {
		sort.Slice(node.Children, func(i, j int) bool {
			return node.Children[i].Project.ID < node.Children[j].Project.ID
		})
	}
	return root, nil
}
