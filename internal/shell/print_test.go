package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintStringVerbatim(t *testing.T) {
	s := newTestSession()

	s.Print("coupons\ncustomers")

	assert.Equal(t, "coupons\ncustomers\n", s.out.String())
}

// A bytes.Buffer is not a terminal, so structured results render as
// indented JSON.
func TestPrintStructuredAsJSON(t *testing.T) {
	s := newTestSession()

	s.Print(map[string]any{"customer": map[string]any{"id": 5}})

	assert.JSONEq(t, `{"customer":{"id":5}}`, s.out.String())
}

func TestPrintRawForcesJSON(t *testing.T) {
	s := newTestSession()
	s.Opts.Raw = true

	s.Print([]any{float64(1), float64(2)})

	assert.JSONEq(t, `[1,2]`, s.out.String())
}
