package helper

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/teamtree-io/teamtree/dao"
	"github.com/teamtree-io/teamtree/internal/handler"
	"github.com/teamtree-io/teamtree/pkg/assignment"
	"github.com/teamtree-io/teamtree/pkg/config"
	"github.com/teamtree-io/teamtree/pkg/janitor"
)

// ConfigInitializer wires configuration and shared dependencies at startup.
type ConfigInitializer struct {
	backendConfig *config.Config
	store         *dao.Store
}

func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment reads .debug.env and overrides the bind address when
// running in gin debug mode.
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if gin.Mode() != gin.DebugMode {
		return nil
	}

	err := godotenv.Load(".debug.env")
	if err != nil {
		return err
	}

	be := os.Getenv("TEAMTREE_BE_PORT")
	if be == "" {
		panic("TEAMTREE_BE_PORT is not set")
	}
	ci.backendConfig.ServerAddr = ":" + be

	return nil
}

// InitializeRegisterConfig connects to Postgres, applies migrations and
// builds the dependencies handed to the handler managers.
func (ci *ConfigInitializer) InitializeRegisterConfig() (*handler.RegisterConfig, error) {
	db := dao.GetDB()
	if err := dao.Migrate(db); err != nil {
		return nil, err
	}

	store := dao.NewStore(db)
	ci.store = store

	return &handler.RegisterConfig{
		Store:  store,
		Engine: assignment.NewEngine(store),
	}, nil
}

// StartJanitor launches the membership consistency sweep on the configured
// schedule.
func (ci *ConfigInitializer) StartJanitor() (*janitor.Janitor, error) {
	j := janitor.New(ci.store)
	if err := j.Start(ci.backendConfig.Janitor.Schedule); err != nil {
		return nil, err
	}
	return j, nil
}
