package opts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Options is the resolved startup configuration. It is built once from
// argv and an optional JSON settings file; afterwards only the interactive
// credential prompts fill in missing required fields.
type Options struct {
	Subdomain     string
	APIKey        string
	SiteKey       string
	DefaultFamily string
	Command       string
	Raw           bool
	Debug         bool
	Help          bool
	Extra         map[string]string
}

// Parse resolves argv into an Options record.
//
// Flags may appear in any order. Bare positional arguments fill the
// subdomain, then the api key, then accumulate into a space-joined command
// string, each only for slots not already filled. Unknown flags are
// accepted and ignored; users depend on that leniency, so it stays.
func Parse(args []string) (*Options, error) {
	o := &Options{Extra: make(map[string]string)}
	args = expandShort(args)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		next := func() string {
			if i+1 < len(args) {
				i++
				return args[i]
			}
			return ""
		}
		switch arg {
		case "-k", "--key", "--api-key":
			o.APIKey = next()
		case "-s", "--subdomain", "--site":
			o.Subdomain = next()
		case "--family":
			o.DefaultFamily = next()
		case "--site-key":
			o.SiteKey = next()
		case "-c", "--command":
			o.Command = next()
		case "--cfg", "--conf", "--config":
			if err := o.mergeConfigFile(next()); err != nil {
				return nil, err
			}
		case "--raw":
			o.Raw = true
		case "--debug":
			o.Debug = true
		case "-h", "--help":
			o.Help = true
			return o, nil
		default:
			switch {
			case strings.HasPrefix(arg, "opt."):
				o.Extra[strings.TrimPrefix(arg, "opt.")] = next()
			case strings.HasPrefix(arg, "-") && arg != "-":
				// unknown flag, skip it
			default:
				o.fillPositional(arg)
			}
		}
	}

	return o, nil
}

func (o *Options) fillPositional(arg string) {
	switch {
	case o.Subdomain == "":
		o.Subdomain = arg
	case o.APIKey == "":
		o.APIKey = arg
	case o.Command == "":
		o.Command = arg
	default:
		o.Command += " " + arg
	}
}

// expandShort rewrites combined short flags like -abc into -a -b -c.
func expandShort(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' {
			for _, r := range arg[1:] {
				out = append(out, "-"+string(r))
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// mergeConfigFile loads a JSON settings document and merges it into the
// options. A top-level "chargify" sub-object is preferred when present.
// Values already set by earlier flags win over the file.
func (o *Options) mergeConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if sub, ok := doc["chargify"].(map[string]any); ok {
		doc = sub
	}
	o.merge(doc)
	return nil
}

func (o *Options) merge(doc map[string]any) {
	fill := func(dst *string, key string) {
		if *dst != "" {
			return
		}
		if v, ok := doc[key].(string); ok {
			*dst = v
		}
	}
	fill(&o.Subdomain, "subdomain")
	fill(&o.APIKey, "apiKey")
	fill(&o.SiteKey, "siteKey")
	fill(&o.DefaultFamily, "defaultFamily")
	fill(&o.Command, "command")
	if v, ok := doc["raw"].(bool); ok && v {
		o.Raw = true
	}
	if v, ok := doc["debug"].(bool); ok && v {
		o.Debug = true
	}
	for k, v := range doc {
		if !strings.HasPrefix(k, "opt.") {
			continue
		}
		name := strings.TrimPrefix(k, "opt.")
		if _, set := o.Extra[name]; set {
			continue
		}
		if s, ok := v.(string); ok {
			o.Extra[name] = s
		}
	}
}

// Usage writes the general usage banner.
func Usage(w io.Writer) {
	fmt.Fprintf(w, `chargify - an interactive shell for the Chargify billing API

USAGE:
    chargify [subdomain] [api-key] [options]
    chargify --config site.json --command "ls customers"
    echo "ls /products" | chargify acme-site 0123abcd

OPTIONS:
    -s, --subdomain, --site <name>    Chargify site subdomain
    -k, --key, --api-key <key>        API key
        --site-key <key>              Hosted page site key
        --family <handle>             Default product family
    -c, --command <cmd>               Run a single command and exit
        --cfg, --conf, --config <p>   Load a JSON settings file
        --raw                         Non-interactive mode, JSON output
        --debug                       Echo resolved calls without executing
    opt.<name> <value>                Pass an arbitrary client option
    -h, --help                        Show this help
`)
}
