package shell

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"

	"github.com/rana/chargify/internal/opts"
)

// fakeClient records every capability call so tests can assert exactly
// which HTTP traffic a command would generate.
type fakeClient struct {
	calls []call
	resp  any
	err   error
	set   map[string]string
}

type call struct {
	method string
	path   string
	body   any
	arg    string
}

func newFakeClient() *fakeClient {
	return &fakeClient{set: make(map[string]string)}
}

func (f *fakeClient) record(method, path string, body any, arg string) (any, error) {
	f.calls = append(f.calls, call{method: method, path: path, body: body, arg: arg})
	return f.resp, f.err
}

func (f *fakeClient) Get(_ context.Context, p string) (any, error) {
	return f.record("GET", p, nil, "")
}

func (f *fakeClient) Post(_ context.Context, p string, body any) (any, error) {
	return f.record("POST", p, body, "")
}

func (f *fakeClient) Put(_ context.Context, p string, body any) (any, error) {
	return f.record("PUT", p, body, "")
}

func (f *fakeClient) Delete(_ context.Context, p string) (any, error) {
	return f.record("DELETE", p, nil, "")
}

func (f *fakeClient) Request(_ context.Context, method, p string, body any) (any, error) {
	return f.record(method, p, body, "")
}

func (f *fakeClient) SetOption(key, value string) {
	f.set[key] = value
}

func (f *fakeClient) ListCustomers(context.Context) (any, error) {
	return f.record("ListCustomers", "", nil, "")
}

func (f *fakeClient) GetCustomer(_ context.Context, id string) (any, error) {
	return f.record("GetCustomer", "", nil, id)
}

func (f *fakeClient) CreateCustomer(_ context.Context, body any) (any, error) {
	return f.record("CreateCustomer", "", body, "")
}

func (f *fakeClient) UpdateCustomer(_ context.Context, id string, body any) (any, error) {
	return f.record("UpdateCustomer", "", body, id)
}

func (f *fakeClient) DeleteCustomer(_ context.Context, id string) (any, error) {
	return f.record("DeleteCustomer", "", nil, id)
}

func (f *fakeClient) LookupCustomer(_ context.Context, ref string) (any, error) {
	return f.record("LookupCustomer", "", nil, ref)
}

func (f *fakeClient) CustomerSubscriptions(_ context.Context, ref string) (any, error) {
	return f.record("CustomerSubscriptions", "", nil, ref)
}

func (f *fakeClient) ListSubscriptions(context.Context) (any, error) {
	return f.record("ListSubscriptions", "", nil, "")
}

func (f *fakeClient) GetSubscription(_ context.Context, id string) (any, error) {
	return f.record("GetSubscription", "", nil, id)
}

func (f *fakeClient) CreateSubscription(_ context.Context, body any) (any, error) {
	return f.record("CreateSubscription", "", body, "")
}

func (f *fakeClient) UpdateSubscription(_ context.Context, id string, body any) (any, error) {
	return f.record("UpdateSubscription", "", body, id)
}

func (f *fakeClient) CancelSubscription(_ context.Context, id string) (any, error) {
	return f.record("CancelSubscription", "", nil, id)
}

func (f *fakeClient) ListProducts(context.Context) (any, error) {
	return f.record("ListProducts", "", nil, "")
}

func (f *fakeClient) GetProduct(_ context.Context, id string) (any, error) {
	return f.record("GetProduct", "", nil, id)
}

func (f *fakeClient) ListProductFamilies(context.Context) (any, error) {
	return f.record("ListProductFamilies", "", nil, "")
}

func (f *fakeClient) ListCoupons(context.Context) (any, error) {
	return f.record("ListCoupons", "", nil, "")
}

func (f *fakeClient) ListEvents(context.Context) (any, error) {
	return f.record("ListEvents", "", nil, "")
}

func (f *fakeClient) ListComponents(context.Context) (any, error) {
	return f.record("ListComponents", "", nil, "")
}

func (f *fakeClient) ListTransactions(context.Context) (any, error) {
	return f.record("ListTransactions", "", nil, "")
}

func (f *fakeClient) ListStatements(context.Context) (any, error) {
	return f.record("ListStatements", "", nil, "")
}

func (f *fakeClient) ListWebhooks(context.Context) (any, error) {
	return f.record("ListWebhooks", "", nil, "")
}

type testSession struct {
	*Session
	client *fakeClient
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestSession() *testSession {
	client := newFakeClient()
	s := NewSession(client, &opts.Options{Extra: make(map[string]string)}, zerolog.Nop())
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	s.Out = out
	s.ErrOut = errOut
	return &testSession{Session: s, client: client, out: out, errOut: errOut}
}
