package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdw"
	"pkt.systems/version"
)

const defaultWrapWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdw")
}

func main() {
	var (
		title      string
		titleLevel int
		quote      bool
		bullets    bool
		numbered   bool
		loose      bool
		wrapFlag   int
		fit        bool
		outPath    string
	)

	flags := pflag.NewFlagSet("mdw", pflag.ExitOnError)
	flags.StringVarP(&title, "title", "t", "", "Emit a heading before the content")
	flags.IntVar(&titleLevel, "title-level", 1, "Heading level for --title (1-6)")
	flags.BoolVarP(&quote, "quote", "q", false, "Emit the content as a block quote")
	flags.BoolVarP(&bullets, "bullets", "b", false, "Emit each text block as a bullet list item")
	flags.BoolVarP(&numbered, "numbered", "n", false, "Emit each text block as a numbered list item")
	flags.BoolVar(&loose, "loose", false, "Separate list items with blank lines")
	flags.IntVarP(&wrapFlag, "wrap", "w", 0, "Soft-wrap paragraphs at this column (0 disables)")
	flags.BoolVar(&fit, "fit", false, "Soft-wrap paragraphs at the terminal width")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdw [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nEscapes plain text into Markdown. If no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if titleLevel < 1 || titleLevel > 6 {
		fmt.Fprintf(os.Stderr, "invalid --title-level %d: expected 1-6\n", titleLevel)
		os.Exit(2)
	}
	if bullets && numbered {
		fmt.Fprintln(os.Stderr, "--bullets and --numbered are mutually exclusive")
		os.Exit(2)
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	input, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if err := mdw.ValidateInput(input); err != nil {
		fmt.Fprintf(os.Stderr, "invalid input: %v\n", err)
		os.Exit(1)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	opts := []mdw.WriteOption{
		mdw.WithWrapWidth(resolveWrapWidth(wrapFlag, fit)),
		mdw.WithLooseLists(loose),
	}
	elements := buildElements(string(input), docShape{
		title:      title,
		titleLevel: titleLevel,
		quote:      quote,
		bullets:    bullets,
		numbered:   numbered,
	})
	w := mdw.NewWriter(writer, opts...)
	for _, el := range elements {
		if err := w.Write(el); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			os.Exit(1)
		}
	}
}

type docShape struct {
	title      string
	titleLevel int
	quote      bool
	bullets    bool
	numbered   bool
}

func buildElements(input string, shape docShape) []*mdw.Element {
	var elements []*mdw.Element
	if shape.title != "" {
		elements = append(elements, mdw.Heading(shape.titleLevel, shape.title))
	}
	blocks := splitBlocks(input)
	switch {
	case shape.bullets || shape.numbered:
		items := make([]*mdw.Element, 0, len(blocks))
		for _, block := range blocks {
			items = append(items, mdw.Text(block))
		}
		if len(items) > 0 {
			if shape.numbered {
				elements = append(elements, mdw.NumberedList(items...))
			} else {
				elements = append(elements, mdw.BulletList(items...))
			}
		}
	case shape.quote:
		children := make([]*mdw.Element, 0, len(blocks))
		for _, block := range blocks {
			children = append(children, mdw.Text(block))
		}
		if len(children) > 0 {
			elements = append(elements, mdw.Quote(children...))
		}
	default:
		for _, block := range blocks {
			elements = append(elements, mdw.Paragraph(block))
		}
	}
	return elements
}

// splitBlocks splits input into blank-line separated text blocks.
func splitBlocks(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	var blocks []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return blocks
}

func resolveWrapWidth(width int, fit bool) int {
	if width > 0 {
		return width
	}
	if fit {
		return terminalWidth(defaultWrapWidth)
	}
	return 0
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	clean := normalizePath(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
