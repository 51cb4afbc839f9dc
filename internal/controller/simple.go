package controller

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"openheader.dev/pkg/openheader/internal/host"
	m "openheader.dev/pkg/openheader/internal/model"
)

const missingCompanionLabel = "-"

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCompanion prints the companion path on its own line.
func (s *SimpleUI) DisplayCompanion(ctx context.Context, _ m.Path, companion m.Companion) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !companion.Found {
		return nil
	}

	s.printf("%s\n", companion.Path)

	return nil
}

// DisplayPairs prints a table of source files and their companions.
func (s *SimpleUI) DisplayPairs(ctx context.Context, pairs []m.Pair) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(pairs) == 0 {
		s.printf("No header or implementation files found\n")
		return nil
	}

	s.printf("\n%s", renderPairsTable(pairs))

	return nil
}

func renderPairsTable(pairs []m.Pair) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Source", "Kind", "Companion"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	paired := 0

	for _, pair := range pairs {
		companion := missingCompanionLabel
		if pair.Companion.Found {
			companion = string(pair.Companion.Path)
			paired++
		}

		table.Append([]string{string(pair.Source), pair.Class.String(), companion})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(pairs)),
		"",
		fmt.Sprintf("Paired %d", paired),
	})

	table.Render()

	return tableBuffer.String()
}

// RunSession is the non-interactive session: the plugin's actions are
// triggered once each and the resulting documents are printed.
func (s *SimpleUI) RunSession(ctx context.Context, workspace Workspace, plugin host.Plugin) error {
	window := newSessionWindow(workspace)

	if err := plugin.Activate(ctx, window); err != nil {
		return fmt.Errorf("activate plugin: %w", err)
	}

	defer func() {
		if err := plugin.Deactivate(ctx); err != nil {
			slog.Error("Failed to deactivate plugin", "error", err)
		}
	}()

	for _, registered := range window.actions.list() {
		if err := registered.handler(ctx); err != nil {
			return fmt.Errorf("%s: %w", registered.action.Name, err)
		}
	}

	s.printDocuments(workspace)

	return nil
}

func (s *SimpleUI) printDocuments(workspace Workspace) {
	active, hasActive := workspace.ActiveDocument()

	for _, doc := range workspace.Documents() {
		marker := " "
		if hasActive && doc.ID == active.ID {
			marker = "*"
		}

		location := string(doc.Location)
		if !doc.HasLocation() {
			location = missingCompanionLabel
		}

		s.printf("%s %s\t%s\n", marker, doc.Name, location)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
