package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		cur, arg, want string
	}{
		{"/", "", "/"},
		{"/", "customers", "/customers"},
		{"/", "/customers", "/customers"},
		{"/customers", "5", "/customers/5"},
		{"/customers/5", "..", "/customers"},
		{"/customers/5", "../..", "/"},
		{"/customers", "../products/9", "/products/9"},
		{"/", "..", "/"},
		{"/", "a//b///c", "/a/b/c"},
		{"/a", "./b/.", "/a/b"},
		{"/a/b", "/", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.cur, tt.arg), "Resolve(%q, %q)", tt.cur, tt.arg)
	}
}

func TestRewriteCustomerRef(t *testing.T) {
	tests := []struct {
		rel, want, subsRef string
	}{
		{"customers/acme123", "customers/lookup?reference=acme123", ""},
		{"customers/123", "customers/123", ""},
		{"customers", "customers", ""},
		{"products/acme", "products/acme", ""},
		{"customers/acme/subscriptions", "customers/subscriptions/lookup?reference=acme", "acme"},
		{"customers/acme/invoices", "customers/invoices/lookup?reference=acme", ""},
		{"customers/a%20b", "customers/lookup?reference=a%2520b", ""},
	}
	for _, tt := range tests {
		got, subsRef := rewriteCustomerRef(tt.rel)
		assert.Equal(t, tt.want, got, tt.rel)
		assert.Equal(t, tt.subsRef, subsRef, tt.rel)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("123"))
	assert.False(t, isNumeric("acme123"))
	assert.False(t, isNumeric("12a"))
	assert.False(t, isNumeric(""))
}
