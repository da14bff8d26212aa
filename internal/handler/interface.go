package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtree-io/teamtree/dao"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

type Manager interface {
	GetName() string
	RegisterRoutes(group *gin.RouterGroup)
}

// RegisterConfig carries the shared dependencies handed to every manager.
type RegisterConfig struct {
	Store  *dao.Store
	Engine *assignment.Engine
}

type Register func(conf *RegisterConfig) Manager

var Registers []Register
