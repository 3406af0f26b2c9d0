package benchmark

import (
	"fmt"
	"regexp"
)

const (
	// DefaultFormat is the row template shared by both report drivers:
	// user, system, total and parenthesized real, each six-decimal
	// fixed-point in a ten-character field.
	DefaultFormat = "%10.6u %10.6y %10.6t %10.6r\n"

	// DefaultCaption titles the four columns of DefaultFormat, each
	// right-aligned over its numeric field.
	DefaultCaption = "      user     system      total        real\n"
)

// directive matches one domain verb together with its inline printf flags,
// e.g. "%u", "%10.6u" or "%-12n".
var directive = regexp.MustCompile(`%([-+ 0#]*[0-9]*(?:\.[0-9]+)?)([uyUYtrn])`)

// Format expands tmpl against t and returns the result; tmpl itself is
// never modified. Seven domain verbs are recognized, each honoring inline
// width/precision flags:
//
//	%u  user time          %y  system time
//	%U  children user      %Y  children system
//	%t  total CPU time     %r  real time, parenthesized
//	%n  label
//
// Domain verbs are substituted first; if args are supplied, the remaining
// template then goes through a fmt.Sprintf pass so generic verbs draw from
// args positionally ("%10.6u in %d runs" works with one extra argument).
func (t Times) Format(tmpl string, args ...interface{}) string {
	out := directive.ReplaceAllStringFunc(tmpl, func(m string) string {
		sub := directive.FindStringSubmatch(m)
		flags := sub[1]
		switch sub[2] {
		case "u":
			return fmt.Sprintf("%"+flags+"f", t.User)
		case "y":
			return fmt.Sprintf("%"+flags+"f", t.System)
		case "U":
			return fmt.Sprintf("%"+flags+"f", t.ChildrenUser)
		case "Y":
			return fmt.Sprintf("%"+flags+"f", t.ChildrenSystem)
		case "t":
			return fmt.Sprintf("%"+flags+"f", t.Total())
		case "r":
			return "(" + fmt.Sprintf("%"+flags+"f", t.Real) + ")"
		case "n":
			return fmt.Sprintf("%"+flags+"s", t.Label)
		}
		return m
	})
	if len(args) == 0 {
		return out
	}
	return fmt.Sprintf(out, args...)
}
