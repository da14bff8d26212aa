package assignment_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/teamtree-io/teamtree/dao/model"
)

func TestTopLevelMembershipCount(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	employee := store.AddEmployee("kim", model.RankSenior)

	topA := store.AddProject("a", nil, 10)
	topB := store.AddProject("b", nil, 10)
	sub := store.AddProject("sub of a", lo.ToPtr(topA), 10)
	store.SeedMembership(topA, employee)
	store.SeedMembership(topB, employee)
	store.SeedMembership(sub, employee)

	count, err := engine.TopLevelMembershipCount(ctx, employee)
	require.NoError(t, err)
	require.Equal(t, 2, count, "subproject memberships do not count as top-level")

	// Deleting a tree removes it from the quota scope.
	require.NoError(t, engine.DeleteProject(ctx, topB))
	count, err = engine.TopLevelMembershipCount(ctx, employee)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSubprojectMembershipCount(t *testing.T) {
	engine, store := newEngine()
	ctx := context.Background()

	employee := store.AddEmployee("lee", model.RankRegular)

	top := store.AddProject("top", nil, 10)
	subA := store.AddProject("sub a", lo.ToPtr(top), 10)
	subAA := store.AddProject("sub aa", lo.ToPtr(subA), 10)
	otherTop := store.AddProject("other", nil, 10)
	otherSub := store.AddProject("other sub", lo.ToPtr(otherTop), 10)

	store.SeedMembership(top, employee) // the root itself is excluded
	store.SeedMembership(subA, employee)
	store.SeedMembership(subAA, employee)
	store.SeedMembership(otherSub, employee)

	count, err := engine.SubprojectMembershipCount(ctx, employee, top)
	require.NoError(t, err)
	require.Equal(t, 2, count, "only subprojects inside the given tree count")
}

func TestQuotaCountsIgnoreAbsentEmployee(t *testing.T) {
	engine, _ := newEngine()
	ctx := context.Background()

	count, err := engine.TopLevelMembershipCount(ctx, 777)
	require.NoError(t, err)
	require.Zero(t, count)
}
