package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Execute runs one submitted command line. Argument errors, unknown
// commands and API failures print and return; nothing here terminates
// the process.
func (s *Session) Execute(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := fields[0]
	cmd, ok := s.Commands[name]
	if !ok {
		fmt.Fprintf(s.ErrOut, "unknown command: %s\n", name)
		return
	}

	args := parseArgs(fields[1:])

	if s.Opts.Debug {
		// Debug mode echoes the resolved call instead of executing it.
		fmt.Fprintf(s.Out, "%s(%s)\n", cmd.Method, strings.Join(fields[1:], ", "))
		return
	}

	s.Log.Debug().Str("command", name).Msg("dispatch")

	res, err := cmd.Run(ctx, s, args)
	if err != nil {
		fmt.Fprintln(s.ErrOut, err.Error())
		return
	}
	if res != nil {
		s.Print(res)
	}
}

// parseArgs opportunistically decodes bracketed tokens as JSON literals.
// Malformed literals pass through as plain strings; users paste partial
// JSON and rely on the leniency, so parse failures are not reported.
func parseArgs(tokens []string) []any {
	args := make([]any, 0, len(tokens))
	for _, t := range tokens {
		if strings.HasPrefix(t, "{") || strings.HasPrefix(t, "[") {
			var v any
			if err := json.Unmarshal([]byte(t), &v); err == nil {
				args = append(args, v)
				continue
			}
		}
		args = append(args, t)
	}
	return args
}
