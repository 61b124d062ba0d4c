// Package main is an interactive shell around one editor surface, useful
// for poking at the command bridge without a GUI host.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/VadimPavlov/MarkupEditor/internal/clipboard"
	"github.com/VadimPavlov/MarkupEditor/internal/config"
	"github.com/VadimPavlov/MarkupEditor/internal/dispatcher"
	"github.com/VadimPavlov/MarkupEditor/internal/editor"
	"github.com/VadimPavlov/MarkupEditor/internal/registry"
	"github.com/VadimPavlov/MarkupEditor/internal/selection"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "editor.toml", "configuration file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: log_level %q: %v\n", cfg.LogLevel, err)
		return 1
	}
	if *verbose {
		level = zapcore.DebugLevel
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	log, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	reg := registry.New(registry.WithLogger(log))
	reg.SubscribeState(func(id string, st *selection.State) {
		fmt.Printf("state: %s\n", summarize(st))
	})

	ed, err := editor.New(reg, cfg,
		editor.WithLogger(log),
		editor.WithReportFunc(func(r editor.Report) {
			if r.Alert {
				fmt.Printf("alert [%s]: %s (%v)\n", r.Code, r.Message, r.Info)
			}
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer ed.Close()

	loaded := make(chan error, 1)
	ed.Load("The quick brown fox jumps over the lazy dog.", func(err error) { loaded <- err })
	if err := <-loaded; err != nil {
		fmt.Fprintf(os.Stderr, "Error: load: %v\n", err)
		return 1
	}
	ed.Focus()

	fmt.Println("markupdemo: select <a> <b> | bold italic underline | h1..h6 | ul ol |")
	fmt.Println("  link <href> | paste <text> | search <text> | next | undo redo | html | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return 0
		}
		if quit := dispatch(ed, strings.Fields(scanner.Text())); quit {
			return 0
		}
	}
}

func dispatch(ed *editor.Editor, args []string) (quit bool) {
	if len(args) == 0 {
		return false
	}
	d := ed.Dispatcher()

	switch args[0] {
	case "quit", "exit":
		return true
	case "select":
		if len(args) == 3 {
			a, _ := strconv.Atoi(args[1])
			b, _ := strconv.Atoi(args[2])
			ed.SetRange(a, b)
		}
	case "bold":
		d.ToggleBold()
	case "italic":
		d.ToggleItalic()
	case "underline":
		d.ToggleUnderline()
	case "h1", "h2", "h3", "h4", "h5", "h6", "p":
		_ = d.ReplaceStyle(selection.StyleUndefined,
			selection.ParseParagraphStyle(strings.ToUpper(args[0])))
	case "ul":
		d.ToggleList(selection.ListUnordered)
	case "ol":
		d.ToggleList(selection.ListOrdered)
	case "link":
		if len(args) == 2 {
			d.InsertLink(args[1])
		}
	case "paste":
		ed.Paste(clipboard.StaticPasteboard{
			Contents: clipboard.Contents{Text: strings.Join(args[1:], " ")},
		})
	case "pasteboard":
		// Reads the real system clipboard.
		ed.Paste(clipboard.SystemPasteboard{})
	case "search":
		if len(args) >= 2 {
			_ = d.Search(strings.Join(args[1:], " "), dispatcher.Forward)
		}
	case "next":
		if err := d.SearchNext(); err != nil {
			fmt.Println(err)
		}
	case "undo":
		d.Undo()
	case "redo":
		d.Redo()
	case "html":
		done := make(chan struct{})
		ed.HTML(false, true, func(html string, err error) {
			if err != nil {
				fmt.Printf("error: %v\n", err)
			} else {
				fmt.Println(html)
			}
			close(done)
		})
		<-done
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
	return false
}

func summarize(st *selection.State) string {
	if !st.Valid {
		return "(invalid)"
	}
	var parts []string
	if st.Selection != "" {
		parts = append(parts, fmt.Sprintf("sel=%q", st.Selection))
	}
	if st.Style != selection.StyleUndefined {
		parts = append(parts, "style="+st.Style.String())
	}
	if st.List != selection.ListUndefined {
		parts = append(parts, "list="+st.List.String())
	}
	var fl string
	for _, f := range []struct {
		on bool
		c  string
	}{
		{st.Format.Bold, "B"}, {st.Format.Italic, "I"}, {st.Format.Underline, "U"},
		{st.Format.Strike, "S"}, {st.Format.Code, "C"},
	} {
		if f.on {
			fl += f.c
		}
	}
	if fl != "" {
		parts = append(parts, "fmt="+fl)
	}
	if st.IsInLink() {
		parts = append(parts, "link="+st.Link.HRef)
	}
	if len(parts) == 0 {
		return "(caret)"
	}
	return strings.Join(parts, " ")
}
