package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"bookmock/internal/config"
	"bookmock/internal/fixtures"
)

// printRoutes writes the base path and the fixture table, one route per line.
// Colors are only emitted when w is a terminal.
func printRoutes(w io.Writer, cfg config.Config) error {
	if err := fixtures.Validate(fixtures.Table()); err != nil {
		return err
	}
	re := lipgloss.NewRenderer(w)
	var (
		headerStyle = re.NewStyle().Bold(true)
		pathStyle   = re.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"})
		mutedStyle  = re.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8A8A8A"})
	)

	mode := "development"
	if cfg.Production {
		mode = "production"
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", headerStyle.Render("base path:"), config.BasePath(cfg.Production), mutedStyle.Render("("+mode+")"))

	width := 0
	for _, s := range fixtures.Table() {
		if len(s.Path) > width {
			width = len(s.Path)
		}
	}
	col := re.NewStyle().Width(width + 2)
	for _, s := range fixtures.Table() {
		_, _ = fmt.Fprintf(w, "GET %s%s\n", col.Render(pathStyle.Render(s.Path)), mutedStyle.Render(s.File))
	}
	return nil
}
