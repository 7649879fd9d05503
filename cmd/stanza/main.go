// Command stanza generates a static HTML site from markdown content.
//
// Usage:
//
//	stanza [flags]
//
// Flags:
//
//	-content string   Content directory with markdown sources (default "content")
//	-static string    Static asset directory copied into the output (default "static")
//	-template string  HTML template with {{ Title }} and {{ Content }} placeholders (default "template.html")
//	-out string       Output directory, cleared on every run (default "public")
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/stanza"
	"github.com/fwojciec/stanza/site"
)

func main() {
	if err := run(); err != nil {
		theme := stanza.DefaultTheme()
		label := lipgloss.NewStyle().Foreground(ansiColor(theme.Error)).Bold(true)
		fmt.Fprintf(os.Stderr, "%s %v\n", label.Render("stanza:"), err)
		os.Exit(1)
	}
}

func run() error {
	var (
		contentDir   = flag.String("content", "content", "Content directory with markdown sources")
		staticDir    = flag.String("static", "static", "Static asset directory copied into the output")
		templatePath = flag.String("template", "template.html", "HTML template with {{ Title }} and {{ Content }} placeholders")
		outDir       = flag.String("out", "public", "Output directory, cleared on every run")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	theme := stanza.DefaultTheme()
	accent := lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true)
	muted := lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true)
	success := lipgloss.NewStyle().Foreground(ansiColor(theme.Success))

	fmt.Println(accent.Render(fmt.Sprintf("stanza: %s -> %s", *contentDir, *outDir)))

	gen := &site.Generator{
		ContentDir:   *contentDir,
		StaticDir:    *staticDir,
		TemplatePath: *templatePath,
		OutDir:       *outDir,
		Logf: func(format string, args ...any) {
			fmt.Println(muted.Render(fmt.Sprintf(format, args...)))
		},
	}
	if err := gen.Run(ctx); err != nil {
		return err
	}

	fmt.Println(success.Render("site generated to " + *outDir))
	return nil
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
