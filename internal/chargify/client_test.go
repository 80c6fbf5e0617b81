package chargify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	auth   string
	ctype  string
	body   []byte
}

func newTestClient(t *testing.T, status int, reply string) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{
			method: r.Method,
			path:   r.URL.RequestURI(),
			auth:   user,
			ctype:  r.Header.Get("Content-Type"),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	c := NewWithDoer(Config{
		Subdomain: "acme",
		APIKey:    "secret",
		Host:      srv.URL,
		Logger:    zerolog.Nop(),
	}, srv.Client())
	return c, &calls
}

func TestGet(t *testing.T) {
	c, calls := newTestClient(t, http.StatusOK, `{"ok":true}`)

	res, err := c.Get(context.Background(), "/customers")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, res)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/customers", call.path)
	assert.Equal(t, "secret", call.auth)
}

func TestPostMarshalsBody(t *testing.T) {
	c, calls := newTestClient(t, http.StatusCreated, `{}`)

	_, err := c.Post(context.Background(), "subscriptions", map[string]any{"customer_id": 5})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/subscriptions", call.path)
	assert.Equal(t, "application/json", call.ctype)
	assert.JSONEq(t, `{"customer_id":5}`, string(call.body))
}

func TestPutSendsStringBodyVerbatim(t *testing.T) {
	c, calls := newTestClient(t, http.StatusOK, `{}`)

	_, err := c.Put(context.Background(), "/customers/5", `{"customer":{"first_name":"A"}}`)
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, `{"customer":{"first_name":"A"}}`, string((*calls)[0].body))
}

func TestDelete(t *testing.T) {
	c, calls := newTestClient(t, http.StatusOK, ``)

	res, err := c.Delete(context.Background(), "/subscriptions/9")
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, http.MethodDelete, (*calls)[0].method)
}

func TestErrorStatus(t *testing.T) {
	c, _ := newTestClient(t, http.StatusNotFound, `{"errors":["no such customer"]}`)

	_, err := c.Get(context.Background(), "/customers/999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no such customer")
}

func TestNonJSONResponse(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, "plain text")

	res, err := c.Get(context.Background(), "/customers")
	require.NoError(t, err)
	assert.Equal(t, "plain text", res)
}

func TestSetOption(t *testing.T) {
	c := NewWithDoer(Config{Subdomain: "acme", Logger: zerolog.Nop()}, nil)

	c.SetOption("subdomain", "other")
	assert.Equal(t, "other", c.Option("subdomain"))
	assert.Equal(t, "https://other.chargify.com", c.baseURL())

	c.SetOption("apiKey", "k2")
	assert.Equal(t, "k2", c.Option("apiKey"))

	c.SetOption("timeout", "30")
	assert.Equal(t, "30", c.Option("timeout"))
}

func TestLookupCustomer(t *testing.T) {
	c, calls := newTestClient(t, http.StatusOK, `{"customer":{"id":42}}`)

	_, err := c.LookupCustomer(context.Background(), "acme 123")
	require.NoError(t, err)
	assert.Equal(t, "/customers/lookup?reference=acme+123", (*calls)[0].path)
}

func TestCustomerSubscriptions(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.RequestURI())
		if r.URL.Path == "/customers/lookup" {
			_, _ = w.Write([]byte(`{"customer":{"id":42}}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := NewWithDoer(Config{Host: srv.URL, Logger: zerolog.Nop()}, srv.Client())
	res, err := c.CustomerSubscriptions(context.Background(), "acme123")
	require.NoError(t, err)
	assert.Equal(t, []any{}, res)
	assert.Equal(t, []string{
		"/customers/lookup?reference=acme123",
		"/customers/42/subscriptions",
	}, calls)
}

func TestCustomerSubscriptionsBadLookup(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"customer":{}}`)

	_, err := c.CustomerSubscriptions(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestCouponsUseDefaultFamily(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := NewWithDoer(Config{Host: srv.URL, DefaultFamily: "starter", Logger: zerolog.Nop()}, srv.Client())
	_, err := c.ListCoupons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/product_families/starter/coupons"}, paths)
}
