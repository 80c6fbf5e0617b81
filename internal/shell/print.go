package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
)

var dump = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Print renders a result. Strings pass through verbatim. Anything else is
// indented JSON when stdout is not a terminal (or --raw was given), and a
// human-readable structural dump when it is. The terminal check happens
// on every call, never cached.
func (s *Session) Print(v any) {
	if str, ok := v.(string); ok {
		fmt.Fprintln(s.Out, str)
		return
	}
	if s.Opts.Raw || !isTerminal(s.Out) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fmt.Fprintln(s.ErrOut, err.Error())
			return
		}
		fmt.Fprintln(s.Out, string(data))
		return
	}
	fmt.Fprint(s.Out, dump.Sdump(v))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
