// Command seed-import converts a seed dataset between formats, for example
// from data.json to a SQLite database or a zstd compressed JSON file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/debemdeboas/dallama/internal/logger"
	"github.com/debemdeboas/dallama/internal/model"
	"github.com/debemdeboas/dallama/internal/seed"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	rowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func main() {
	in := flag.String("in", "", "Seed to read (.json, .json.zst, .json.gz, .db). Empty reads the built-in data")
	out := flag.String("out", "", "Seed to write, format chosen by extension")
	level := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	if *out == "" {
		fail(fmt.Errorf("the -out flag is required"))
	}

	seed.SetLogger(logger.New(*level, logger.FormatConsole))

	ds, err := seed.Load(*in)
	if err != nil {
		fail(err)
	}
	if err := seed.Save(*out, ds); err != nil {
		fail(err)
	}

	fmt.Println(summary(*in, *out, ds))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errStyle.Render("Error: "+err.Error()))
	os.Exit(1)
}

func summary(in, out string, ds *seed.Dataset) string {
	if in == "" {
		in = "built-in data"
	}

	counts := make(map[model.UserID]int, len(ds.Users))
	for _, e := range ds.Posts {
		counts[e.Post.Author]++
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s -> %s", in, out)))
	b.WriteByte('\n')
	for _, u := range ds.Users {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-3s %-12s %d posts", u.Initial(), u.Name, counts[u.ID])))
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprintf("%d users, %d posts", len(ds.Users), len(ds.Posts)))

	return boxStyle.Render(b.String())
}
