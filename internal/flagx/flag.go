// Package flagx lets several flag sets share one command line: each
// component keeps only the flags it defines and parses those.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps the flags named in names, with their values, and drops
// everything else. Names are given without dashes; "-x", "--x", "-x=v" and
// "--x=v" all match "x". A flag without "=" takes the next argument as its
// value unless that argument starts with a dash.
//
//	FilterArgs([]string{"-d", "dsn", "-email", "a@b.c"}, "email") // [-email a@b.c]
func FilterArgs(args []string, names ...string) []string {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, inline, ok := splitFlag(args[i])
		if !ok || !allowed[name] {
			continue
		}
		filtered = append(filtered, args[i])
		if !inline && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// splitFlag returns the bare name of a flag argument and whether its value
// is inline. ok is false for positionals and the "--" terminator.
func splitFlag(arg string) (name string, inline, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false, false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, inline = strings.Cut(name, "=")
	return name, inline, name != ""
}

// ConfigPath returns the JSON config file given by -c or -config in args,
// or "" when neither is present. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
