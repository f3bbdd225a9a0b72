package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tangzhangming/rascal/internal/ast"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	nodeStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// highlight 为树中的标签着色，分支符号保持原样
func highlight(c ast.Class, s string) string {
	switch c {
	case ast.ClassSection:
		return sectionStyle.Render(s)
	case ast.ClassPlaceholder:
		return placeholderStyle.Render(s)
	default:
		return nodeStyle.Render(s)
	}
}
