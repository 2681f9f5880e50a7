//go:build debugsend

package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/trackbill/backend/test/integration/steps"
)

func TestDebugSend(t *testing.T) {
	paths := strings.Split(os.Getenv("DEBUG_PATHS"), ",")
	opts := godog.Options{
		Format:      "pretty",
		Paths:       paths,
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Strict:      true,
		TestingT:    t,
	}
	suite := godog.TestSuite{
		Name:                 "debug",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}
	if suite.Run() != 0 {
		t.Fatal("failed")
	}
}
