// Package ui provides terminal output helpers for blctl commands: styled
// success/failure result boxes, a confirmation prompt for flash writes, and
// the shared lipgloss color palette. Rendering adapts to the terminal width
// with sensible minimum and maximum bounds.
package ui
