package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B9D"))
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#45B7D1"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#888888"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Underline(true)

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8B5FBF")).Padding(0, 1)
	popupStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FF8A5B")).Padding(0, 2)
)

var rarityStyles = map[string]lipgloss.Style{
	"legendary": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700")),
	"epic":      lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5FBF")),
	"rare":      lipgloss.NewStyle().Foreground(lipgloss.Color("#45B7D1")),
	"common":    lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
}

// swatch renders a colored block for a hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}
