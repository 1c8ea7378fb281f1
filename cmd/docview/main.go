// Command docview renders markdown files in a scrollable terminal viewer.
// The document is rebuilt from scratch whenever the displayed file
// changes on disk.
//
// Usage:
//
//	docview [flags] [path]
//
// Path may be a markdown file or a directory; directories are expanded
// with --pattern. Keys: tab/shift+tab cycle files, [ and ] select links,
// o or enter opens the selected link, q quits.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"

	"github.com/docview-dev/docview"
	bt "github.com/docview-dev/docview/bubbletea"
	"github.com/docview-dev/docview/fs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "docview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width   = flag.Int("width", 0, "cap rendered line width (0 = terminal width)")
		pattern = flag.String("pattern", "**/*.md", "glob pattern for markdown files when path is a directory")
		watch   = flag.Bool("watch", true, "rebuild when the displayed file changes on disk")
		noColor = flag.Bool("no-color", false, "disable colored output")
	)
	flag.Parse()

	if *noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	path := "."
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	files, err := resolveFiles(path, *pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %q under %s", *pattern, path)
	}

	m := bt.New(files, docview.DefaultTheme(), opener{})
	if *width > 0 {
		m = m.WithMaxWidth(*width)
	}
	p := bt.NewProgram(m)

	if *watch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		// Watch directories rather than files: many editors replace the
		// file on save, which silently drops a direct file watch.
		watched := make(map[string]bool, len(files))
		dirs := make(map[string]bool)
		for _, file := range files {
			watched[file] = true
			dir := filepath.Dir(file)
			if dirs[dir] {
				continue
			}
			dirs[dir] = true
			if err := watcher.Add(dir); err != nil {
				return err
			}
		}

		go func() {
			for event := range watcher.Events {
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Clean(event.Name)
				if !watched[name] {
					continue
				}
				data, err := os.ReadFile(name)
				if err != nil {
					continue
				}
				// Full rebuild on every change: the model discards the
				// old document when the new text arrives. Later writes
				// win because the program processes messages in order.
				p.Send(bt.SetTextMsg{Path: name, Text: string(data)})
			}
		}()
	}

	_, err = p.Run()
	return err
}

func resolveFiles(path, pattern string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{filepath.Clean(path)}, nil
	}
	return fs.Glob(path, pattern)
}

// opener activates links with the platform URL handler.
type opener struct{}

func (opener) Activate(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
