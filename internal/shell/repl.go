package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	prompt "github.com/c-bata/go-prompt"
)

// RunInteractive drives the prompt loop until exit/quit. Commands run one
// at a time; input submitted while a command is busy is dropped.
func (s *Session) RunInteractive(ctx context.Context) {
	var busy atomic.Bool
	executor := func(line string) {
		if !busy.CompareAndSwap(false, true) {
			return
		}
		defer busy.Store(false)
		s.Execute(ctx, line)
	}

	p := prompt.New(
		executor,
		s.complete,
		prompt.OptionPrefix(s.Opts.Subdomain+"> "),
		prompt.OptionTitle("chargify"),
		prompt.OptionSetExitCheckerOnInput(func(_ string, _ bool) bool {
			return s.done || ctx.Err() != nil
		}),
	)
	p.Run()
}

// RunPiped executes each line read from r, used when stdin is not a
// terminal or --raw was given.
func (s *Session) RunPiped(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s.Execute(ctx, line)
		if s.done || ctx.Err() != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// complete implements tab completion: a single token completes against
// the command table by prefix; a second token, when the first is a
// builtin, completes against the toplevel directory list. Directory
// completion is only offered at the root.
func (s *Session) complete(d prompt.Document) []prompt.Suggest {
	fields := strings.Split(d.TextBeforeCursor(), " ")
	switch len(fields) {
	case 1:
		var suggests []prompt.Suggest
		for _, name := range completeCommand(s.commandNames(), fields[0]) {
			suggests = append(suggests, prompt.Suggest{Text: name, Description: s.Commands[name].Help})
		}
		return suggests
	case 2:
		cmd, ok := s.Commands[fields[0]]
		if !ok || !cmd.Builtin {
			return nil
		}
		var suggests []prompt.Suggest
		for _, dir := range completeDir(s.cwd, fields[1]) {
			suggests = append(suggests, prompt.Suggest{Text: dir})
		}
		return suggests
	}
	return nil
}

// completeCommand returns the command names matching a typed prefix.
func completeCommand(names []string, prefix string) []string {
	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// completeDir returns toplevel directories matching the typed path,
// honoring a leading slash and the current-path context.
func completeDir(cwd, typed string) []string {
	lead := ""
	rest := typed
	if strings.HasPrefix(typed, "/") {
		lead = "/"
		rest = typed[1:]
	} else if cwd != "/" {
		return nil
	}
	if strings.Contains(rest, "/") {
		return nil
	}
	var out []string
	for _, dir := range toplevel {
		if strings.HasPrefix(dir, rest) {
			out = append(out, lead+dir)
		}
	}
	return out
}
