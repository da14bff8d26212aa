// Package assignment implements the participant-assignment constraint
// engine: tree resolution over the project forest, rank-based quota
// counting, assignment validation with a force override, and hierarchical
// soft deletion. The engine is stateless between calls; everything it knows
// lives behind the Store interface.
package assignment

import (
	"github.com/teamtree-io/teamtree/dao/model"
)

// Per-rank ceilings. A missing rank means no ceiling for that scope.
var (
	topLevelCeiling = map[uint8]int{
		model.RankSenior:  3,
		model.RankRegular: 2,
		model.RankJunior:  1,
	}
	subprojectCeiling = map[uint8]int{
		model.RankRegular: 2,
		model.RankJunior:  1,
	}
)

type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// scoped returns an engine bound to a transaction-scoped store.
func scoped(s Store) *Engine {
	return &Engine{store: s}
}

// ProjectWithMembers is the snapshot returned by the assignment success path.
type ProjectWithMembers struct {
	Project model.Project
	Members []model.Employee
}
