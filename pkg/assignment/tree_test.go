package assignment_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

func TestProjectTreeAssemblesNesting(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	root := store.AddProject("root", nil, 10)
	childA := store.AddProject("child a", lo.ToPtr(root), 10)
	childB := store.AddProject("child b", lo.ToPtr(root), 10)
	grandchild := store.AddProject("grandchild", lo.ToPtr(childA), 10)

	member := store.AddEmployee("member", model.RankUnrestricted)
	store.SeedMembership(childA, member)

	tree, err := engine.ProjectTree(ctx, root)
	require.NoError(t, err)
	require.Equal(t, root, tree.Project.ID)
	require.Len(t, tree.Children, 2)
	require.Equal(t, childA, tree.Children[0].Project.ID)
	require.Equal(t, childB, tree.Children[1].Project.ID)

	nodeA := tree.Children[0]
	require.Len(t, nodeA.Members, 1)
	require.Equal(t, member, nodeA.Members[0].ID)
	require.Len(t, nodeA.Children, 1)
	require.Equal(t, grandchild, nodeA.Children[0].Project.ID)
}

func TestProjectTreeExcludesDeletedBranches(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	root := store.AddProject("root", nil, 10)
	keep := store.AddProject("keep", lo.ToPtr(root), 10)
	drop := store.AddProject("drop", lo.ToPtr(root), 10)
	store.AddProject("under drop", lo.ToPtr(drop), 10)

	require.NoError(t, engine.DeleteProject(ctx, drop))

	tree, err := engine.ProjectTree(ctx, root)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	require.Equal(t, keep, tree.Children[0].Project.ID)
}

func TestProjectTreeNotFound(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	_, err := engine.ProjectTree(ctx, 321)
	requireRejection(t, err, assignment.KindNotFound)

	gone := store.AddProject("gone", nil, 10)
	require.NoError(t, engine.DeleteProject(ctx, gone))
	_, err = engine.ProjectTree(ctx, gone)
	requireRejection(t, err, assignment.KindNotFound)
}
