package assignment_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/teamtree-io/teamtree/dao/model"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

func TestDeleteProjectCascades(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	root := store.AddProject("root", nil, 10)
	child := store.AddProject("child", lo.ToPtr(root), 10)
	grandchild := store.AddProject("grandchild", lo.ToPtr(child), 10)
	bystander := store.AddProject("bystander", nil, 10)

	employee := store.AddEmployee("member", model.RankUnrestricted)
	store.SeedMembership(root, employee)
	store.SeedMembership(child, employee)
	store.SeedMembership(grandchild, employee)
	store.SeedMembership(bystander, employee)

	require.NoError(t, engine.DeleteProject(ctx, root))

	for _, id := range []uint{root, child, grandchild} {
		p, err := store.AnyProject(ctx, id)
		require.NoError(t, err)
		require.True(t, p.IsDeleted, "project %d should be soft-deleted", id)
		require.False(t, store.HasMembership(id, employee), "project %d should have no members left", id)
	}

	// The unrelated tree is untouched.
	p, err := store.AnyProject(ctx, bystander)
	require.NoError(t, err)
	require.False(t, p.IsDeleted)
	require.True(t, store.HasMembership(bystander, employee))
}

func TestDeleteProjectIsIdempotent(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	root := store.AddProject("root", nil, 10)
	store.AddProject("child", lo.ToPtr(root), 10)

	require.NoError(t, engine.DeleteProject(ctx, root))
	require.NoError(t, engine.DeleteProject(ctx, root))

	p, err := store.AnyProject(ctx, root)
	require.NoError(t, err)
	require.True(t, p.IsDeleted)
	require.Zero(t, store.MembershipCount())
}

func TestDeleteProjectNotFound(t *testing.T) {
	engine, _ := newEngine()

	err := engine.DeleteProject(context.Background(), 404)
	requireRejection(t, err, assignment.KindNotFound)
}

func TestDeleteProjectRepairsPartiallyDeletedSubtree(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	root := store.AddProject("root", nil, 10)
	child := store.AddProject("child", lo.ToPtr(root), 10)
	employee := store.AddEmployee("member", model.RankUnrestricted)
	store.SeedMembership(child, employee)

	// Child was already marked deleted but kept a stale membership row.
	require.NoError(t, store.MarkProjectDeleted(ctx, child))

	require.NoError(t, engine.DeleteProject(ctx, root))
	require.False(t, store.HasMembership(child, employee))
}
