package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmFlash displays a warning box and prompts the user to confirm
// before the layout is written to the controller. Returns true if the user
// confirmed, false otherwise.
func ConfirmFlash(port string, layerCount int) bool {
	width := GetTerminalWidth()

	warnings := []string{
		fmt.Sprintf("This will replace the layout flashed on %s", port),
		fmt.Sprintf("The new layout has %d layer(s)", layerCount),
		"Do not unplug the keyboard while the write is in progress",
		"Keep a copy of your current layout if you may want it back",
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render("   ⚠  WARNING  ─  FLASH LAYOUT"))
	lines = append(lines, "")
	for _, warning := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	fmt.Println(box)
	fmt.Println()

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Print(promptStyle.Render("Write this layout to the keyboard? [y/N]: "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		fmt.Println()
		return true
	}

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	fmt.Println()
	return false
}
