package shell

import (
	"net/url"
	"path"
	"strings"
)

// toplevel is the fixed listing of virtual directories shown at the root.
var toplevel = []string{
	"coupons",
	"customers",
	"events",
	"products",
	"product_families",
	"subscriptions",
	"statements",
	"transactions",
	"components",
	"webhooks",
}

// Resolve joins p against the current path and normalizes it. The result
// is always absolute; `.`, `..` and redundant slashes collapse. An empty
// p resolves to the current path.
func Resolve(cur, p string) string {
	if p == "" {
		p = cur
	} else if !path.IsAbs(p) {
		p = path.Join(cur, p)
	}
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// rewriteCustomerRef maps customers/<ref> paths onto the reference lookup
// endpoint, since the API accepts only numeric customer IDs in path
// position. It returns the rewritten relative path plus, when the path
// targets customers/<ref>/subscriptions, the reference for the dedicated
// by-reference subscriptions lookup.
func rewriteCustomerRef(rel string) (string, string) {
	segs := strings.Split(rel, "/")
	if len(segs) < 2 || segs[0] != "customers" || isNumeric(segs[1]) {
		return rel, ""
	}
	ref := segs[1]
	rest := segs[2:]

	subsRef := ""
	if len(rest) > 0 && rest[0] == "subscriptions" {
		subsRef = ref
	}

	out := append([]string{"customers"}, rest...)
	out = append(out, "lookup?reference="+url.QueryEscape(ref))
	return strings.Join(out, "/"), subsRef
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// resolveResource turns a shell path argument into the relative REST
// resource path, applying the customer-reference rewrite.
func (s *Session) resolveResource(arg string) (string, string) {
	rel := strings.Trim(Resolve(s.cwd, arg), "/")
	if rel == "" {
		return "", ""
	}
	return rewriteCustomerRef(rel)
}
