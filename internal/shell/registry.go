package shell

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// handlerFunc is the shape of every command: synchronous, one result, one
// error, session context passed explicitly.
type handlerFunc func(ctx context.Context, s *Session, args []any) (any, error)

// Command is one entry in the static command table.
type Command struct {
	// Name is the dash-cased public name typed at the prompt.
	Name string
	// Method is the camel-cased client method the name translates to.
	Method string
	// Builtin marks shell verbs as opposed to client pass-throughs.
	Builtin bool
	Help    string
	Run     handlerFunc
}

// ignoredMethods are the low-level transport primitives that never appear
// on the command table.
var ignoredMethods = []string{"Get", "Post", "Put", "Delete", "Request"}

// newRegistry builds the command table. It is static: every entry is an
// explicit name-to-handler mapping, nothing is reflected off the client.
func newRegistry() map[string]*Command {
	cmds := []*Command{
		{Name: "cd", Method: "Cd", Builtin: true, Help: "change the current virtual path", Run: runCd},
		{Name: "pwd", Method: "Pwd", Builtin: true, Help: "print the current virtual path", Run: runPwd},
		{Name: "ls", Method: "Ls", Builtin: true, Help: "list a resource path (GET)", Run: runLs},
		{Name: "ll", Method: "Ll", Builtin: true, Help: "alias of ls", Run: runLs},
		{Name: "cat", Method: "Cat", Builtin: true, Help: "alias of ls", Run: runLs},
		{Name: "less", Method: "Less", Builtin: true, Help: "page an ls result through the system pager", Run: runLess},
		{Name: "rm", Method: "Rm", Builtin: true, Help: "delete a resource path (DELETE)", Run: runRm},
		{Name: "mv", Method: "Mv", Builtin: true, Help: "update a resource: mv <body> <path> (PUT)", Run: runMv},
		{Name: "mk", Method: "Mk", Builtin: true, Help: "create a resource: mk [path] <body> (POST)", Run: runMk},
		{Name: "set", Method: "Set", Builtin: true, Help: "set a client option: set <key> <value>", Run: runSet},
		{Name: "help", Method: "Help", Builtin: true, Help: "show usage or per-command help", Run: runHelp},
		{Name: "exit", Method: "Exit", Builtin: true, Help: "leave the shell", Run: runExit},
		{Name: "quit", Method: "Quit", Builtin: true, Help: "leave the shell", Run: runExit},

		passthrough("ListCustomers", "list all customers", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListCustomers(ctx)
		}),
		passthrough("GetCustomer", "fetch a customer by numeric id", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("get-customer <id>")
			}
			return s.Client.GetCustomer(ctx, argString(args, 0))
		}),
		passthrough("CreateCustomer", "create a customer from a JSON body", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("create-customer <body>")
			}
			return s.Client.CreateCustomer(ctx, args[0])
		}),
		passthrough("UpdateCustomer", "update a customer: update-customer <id> <body>", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 2 {
				return nil, errArgRequired("update-customer <id> <body>")
			}
			return s.Client.UpdateCustomer(ctx, argString(args, 0), args[1])
		}),
		passthrough("DeleteCustomer", "delete a customer by numeric id", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("delete-customer <id>")
			}
			return s.Client.DeleteCustomer(ctx, argString(args, 0))
		}),
		passthrough("LookupCustomer", "find a customer by reference", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("lookup-customer <reference>")
			}
			return s.Client.LookupCustomer(ctx, argString(args, 0))
		}),
		passthrough("CustomerSubscriptions", "list a customer's subscriptions by reference", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("customer-subscriptions <reference>")
			}
			return s.Client.CustomerSubscriptions(ctx, argString(args, 0))
		}),
		passthrough("ListSubscriptions", "list all subscriptions", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListSubscriptions(ctx)
		}),
		passthrough("GetSubscription", "fetch a subscription by id", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("get-subscription <id>")
			}
			return s.Client.GetSubscription(ctx, argString(args, 0))
		}),
		passthrough("CreateSubscription", "create a subscription from a JSON body", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("create-subscription <body>")
			}
			return s.Client.CreateSubscription(ctx, args[0])
		}),
		passthrough("UpdateSubscription", "update a subscription: update-subscription <id> <body>", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 2 {
				return nil, errArgRequired("update-subscription <id> <body>")
			}
			return s.Client.UpdateSubscription(ctx, argString(args, 0), args[1])
		}),
		passthrough("CancelSubscription", "cancel a subscription by id", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("cancel-subscription <id>")
			}
			return s.Client.CancelSubscription(ctx, argString(args, 0))
		}),
		passthrough("ListProducts", "list all products", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListProducts(ctx)
		}),
		passthrough("GetProduct", "fetch a product by id", func(ctx context.Context, s *Session, args []any) (any, error) {
			if len(args) < 1 {
				return nil, errArgRequired("get-product <id>")
			}
			return s.Client.GetProduct(ctx, argString(args, 0))
		}),
		passthrough("ListProductFamilies", "list all product families", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListProductFamilies(ctx)
		}),
		passthrough("ListCoupons", "list coupons for the default family", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListCoupons(ctx)
		}),
		passthrough("ListEvents", "list events", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListEvents(ctx)
		}),
		passthrough("ListComponents", "list components for the default family", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListComponents(ctx)
		}),
		passthrough("ListTransactions", "list transactions", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListTransactions(ctx)
		}),
		passthrough("ListStatements", "list statements", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListStatements(ctx)
		}),
		passthrough("ListWebhooks", "list webhooks", func(ctx context.Context, s *Session, _ []any) (any, error) {
			return s.Client.ListWebhooks(ctx)
		}),
	}

	table := make(map[string]*Command, len(cmds))
	for _, c := range cmds {
		table[c.Name] = c
	}
	return table
}

func passthrough(method, help string, run handlerFunc) *Command {
	return &Command{Name: camelToDash(method), Method: method, Help: help, Run: run}
}

// dashToCamel turns a dash-cased command name into its client method name.
func dashToCamel(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// camelToDash is the inverse of dashToCamel.
func camelToDash(method string) string {
	var b strings.Builder
	for i, r := range method {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// camelKey lower-camels a dash-cased option key, e.g. api-key -> apiKey.
func camelKey(name string) string {
	c := dashToCamel(name)
	if c == "" {
		return c
	}
	return strings.ToLower(c[:1]) + c[1:]
}

func (s *Session) commandNames() []string {
	names := make([]string, 0, len(s.Commands))
	for name := range s.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
