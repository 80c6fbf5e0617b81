package shell

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/rana/chargify/internal/opts"
)

// Client is the capability surface the shell drives. *chargify.Client
// satisfies it; tests use a recording fake.
type Client interface {
	// Low-level primitives. Deliberately kept off the command table.
	Get(ctx context.Context, path string) (any, error)
	Post(ctx context.Context, path string, body any) (any, error)
	Put(ctx context.Context, path string, body any) (any, error)
	Delete(ctx context.Context, path string) (any, error)
	Request(ctx context.Context, method, path string, body any) (any, error)

	SetOption(key, value string)

	ListCustomers(ctx context.Context) (any, error)
	GetCustomer(ctx context.Context, id string) (any, error)
	CreateCustomer(ctx context.Context, body any) (any, error)
	UpdateCustomer(ctx context.Context, id string, body any) (any, error)
	DeleteCustomer(ctx context.Context, id string) (any, error)
	LookupCustomer(ctx context.Context, reference string) (any, error)
	CustomerSubscriptions(ctx context.Context, reference string) (any, error)
	ListSubscriptions(ctx context.Context) (any, error)
	GetSubscription(ctx context.Context, id string) (any, error)
	CreateSubscription(ctx context.Context, body any) (any, error)
	UpdateSubscription(ctx context.Context, id string, body any) (any, error)
	CancelSubscription(ctx context.Context, id string) (any, error)
	ListProducts(ctx context.Context) (any, error)
	GetProduct(ctx context.Context, id string) (any, error)
	ListProductFamilies(ctx context.Context) (any, error)
	ListCoupons(ctx context.Context) (any, error)
	ListEvents(ctx context.Context) (any, error)
	ListComponents(ctx context.Context) (any, error)
	ListTransactions(ctx context.Context) (any, error)
	ListStatements(ctx context.Context) (any, error)
	ListWebhooks(ctx context.Context) (any, error)
}

// Session carries all shell state explicitly through every handler call:
// the current virtual path, the resolved options, the client handle and
// the output streams. No globals.
type Session struct {
	Client   Client
	Opts     *opts.Options
	Log      zerolog.Logger
	Out      io.Writer
	ErrOut   io.Writer
	Commands map[string]*Command

	cwd  string
	done bool
}

// NewSession returns a session rooted at /.
func NewSession(client Client, o *opts.Options, log zerolog.Logger) *Session {
	s := &Session{
		Client: client,
		Opts:   o,
		Log:    log,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		cwd:    "/",
	}
	s.Commands = newRegistry()
	return s
}

// Path returns the current virtual path.
func (s *Session) Path() string {
	return s.cwd
}

// Done reports whether an exit command has been executed.
func (s *Session) Done() bool {
	return s.done
}
