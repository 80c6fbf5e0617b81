package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/rana/chargify/internal/opts"
)

// errArgRequired reports a missing builtin argument. It travels down the
// same channel as API failures: the loop prints it and carries on.
func errArgRequired(usage string) error {
	return fmt.Errorf("argument required: %s", usage)
}

// argString renders the i-th dispatched argument back to a string; path
// and key arguments are always plain tokens.
func argString(args []any, i int) string {
	if i >= len(args) {
		return ""
	}
	if s, ok := args[i].(string); ok {
		return s
	}
	return fmt.Sprint(args[i])
}

func runCd(_ context.Context, s *Session, args []any) (any, error) {
	s.cwd = Resolve(s.cwd, argString(args, 0))
	return nil, nil
}

func runPwd(_ context.Context, s *Session, _ []any) (any, error) {
	return s.cwd, nil
}

func runLs(ctx context.Context, s *Session, args []any) (any, error) {
	return s.list(ctx, argString(args, 0))
}

// list implements ls: the root resolves to the fixed toplevel listing,
// everything else becomes a GET, with the customer-reference rewrite
// applied first.
func (s *Session) list(ctx context.Context, pathArg string) (any, error) {
	rel, subsRef := s.resolveResource(pathArg)
	if rel == "" {
		return strings.Join(toplevel, "\n"), nil
	}
	if subsRef != "" {
		return s.Client.CustomerSubscriptions(ctx, subsRef)
	}
	return s.Client.Get(ctx, "/"+rel)
}

func runRm(ctx context.Context, s *Session, args []any) (any, error) {
	if len(args) < 1 {
		return nil, errArgRequired("rm <path>")
	}
	rel, _ := s.resolveResource(argString(args, 0))
	return s.Client.Delete(ctx, "/"+rel)
}

func runMv(ctx context.Context, s *Session, args []any) (any, error) {
	if len(args) < 2 {
		return nil, errArgRequired("mv <body> <path>")
	}
	rel, _ := s.resolveResource(argString(args, 1))
	return s.Client.Put(ctx, "/"+rel, args[0])
}

func runMk(ctx context.Context, s *Session, args []any) (any, error) {
	if len(args) < 1 {
		return nil, errArgRequired("mk [path] <body>")
	}
	pathArg := "subscriptions"
	body := args[0]
	if len(args) >= 2 {
		pathArg = argString(args, 0)
		body = args[1]
	}
	rel, _ := s.resolveResource(pathArg)
	return s.Client.Post(ctx, "/"+rel, body)
}

func runSet(_ context.Context, s *Session, args []any) (any, error) {
	if len(args) < 2 {
		return nil, errArgRequired("set <key> <value>")
	}
	s.Client.SetOption(camelKey(argString(args, 0)), argString(args, 1))
	return nil, nil
}

func runHelp(_ context.Context, s *Session, args []any) (any, error) {
	if len(args) >= 1 {
		name := argString(args, 0)
		cmd, ok := s.Commands[name]
		if !ok {
			return nil, fmt.Errorf("unknown command: %s", name)
		}
		if cmd.Help == "" {
			return fmt.Sprintf("%s: no help available", name), nil
		}
		return fmt.Sprintf("%s: %s", name, cmd.Help), nil
	}

	var b strings.Builder
	opts.Usage(&b)
	b.WriteString("\nCOMMANDS:\n")
	b.WriteString(wordwrap.WrapString(strings.Join(s.commandNames(), " "), 80))
	return b.String(), nil
}

func runExit(_ context.Context, s *Session, _ []any) (any, error) {
	s.done = true
	return nil, nil
}
