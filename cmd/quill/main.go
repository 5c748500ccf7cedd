package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
)

// logEnv names the file debug logs are appended to. Logging is off otherwise:
// the terminal belongs to the editor.
const logEnv = "QUILL_LOG"

type model struct {
	editor editor.Model
}

func newModel(path string) model {
	cfg := editor.Config{
		Path:    path,
		Version: quill.Version(),
		Style:   editor.DefaultStyle(),
		KeyMap:  editor.DefaultKeyMap(),
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func setupLogging() (func(), error) {
	path := os.Getenv(logEnv)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "quill")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: quill [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	closeLog, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		return 1
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "quill: stdin and stdout must be a terminal")
		return 1
	}

	log.Printf("starting quill %s", quill.Version())
	p := tea.NewProgram(newModel(flag.Arg(0)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
