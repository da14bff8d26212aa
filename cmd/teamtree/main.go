package main

import (
	"k8s.io/klog/v2"

	"github.com/teamtree-io/teamtree/cmd/teamtree/helper"
)

// @title						teamtree API
// @version						1.0.0
// @description					CRUD backend for a hierarchy of projects and the employees assigned to them.
func main() {
	// Initialize configuration
	configInit := helper.NewConfigInitializer()
	backendConfig := configInit.GetBackendConfig()

	// Load debug environment if needed
	if err := configInit.LoadDebugEnvironment(); err != nil {
		klog.Fatalf("Failed to load env: %s", err)
	}

	// Initialize register config and dependencies
	registerConfig, err := configInit.InitializeRegisterConfig()
	if err != nil {
		klog.Fatalf("Failed to register config: %s", err)
	}

	// Start the membership consistency sweep
	jan, err := configInit.StartJanitor()
	if err != nil {
		klog.Fatalf("Failed to start janitor: %s", err)
	}
	defer jan.Stop()

	// Start HTTP server
	serverRunner := helper.NewServerRunner(backendConfig)
	serverRunner.StartServer(registerConfig)
}
