package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleExact   = lipgloss.NewStyle().Foreground(colorGreen)
	styleBound   = lipgloss.NewStyle().Foreground(colorAmber)
	styleFail    = lipgloss.NewStyle().Foreground(colorRed)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleNameCol = lipgloss.NewStyle().Width(24)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

func printKeyValue(w io.Writer, key string, value any) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleNumber.Render(fmt.Sprint(value)))
}

// printRow prints one estimate: name, width, lower bound and exactness.
func printRow(w io.Writer, name string, width, lower int, exact bool) {
	kind := styleBound.Render("bound")
	if exact {
		kind = styleExact.Render("exact")
	}
	fmt.Fprintf(w, "%s width=%s lower=%s %s\n",
		styleNameCol.Render(name), styleNumber.Render(fmt.Sprint(width)), styleDim.Render(fmt.Sprint(lower)), kind)
}

func printCheck(w io.Writer, ok bool, format string, args ...any) {
	icon := styleExact.Render(iconSuccess)
	if !ok {
		icon = styleFail.Render(iconError)
	}
	fmt.Fprintln(w, icon+" "+fmt.Sprintf(format, args...))
}
