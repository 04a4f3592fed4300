package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the machina ASCII banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient from indigo to rose.
	lines := []struct {
		text  string
		color string
	}{
		{"                      _     _             ", "#818cf8"},
		{"  _ __ ___   __ _  __| |__ (_)_ __   __ _ ", "#a78bfa"},
		{" | '_ ` _ \\ / _` |/ _| '_ \\| | '_ \\ / _` |", "#c084fc"},
		{" | | | | | | (_| | (_| | | | | | | | (_| |", "#e879f9"},
		{" |_| |_| |_|\\__,_|\\__|_| |_|_|_| |_|\\__,_|", "#f472b6"},
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println(termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Println()
}
