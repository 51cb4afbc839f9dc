package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	domainmocks "openheader.dev/pkg/openheader/internal/domain/mocks"
)

// useMockWorkflow swaps the shared workflow for a mock until the test ends.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// newTestRootCmd returns a root command with sub attached and a temp log file.
func newTestRootCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func logFileArg(t *testing.T) string {
	t.Helper()

	return "--log-file=" + t.TempDir() + "/openheader.log"
}
