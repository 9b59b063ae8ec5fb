package getopt

import (
	"strings"
)

const indent = "    "

// Usage renders the program profile and the help entries in the order they
// were registered.
func (p *Parser[T]) Usage() string {
	var b strings.Builder

	b.WriteString("NAME\n")
	b.WriteString(indent + p.profile.name)
	if p.profile.description != "" {
		b.WriteString(" -- " + p.profile.description)
	}
	b.WriteString("\n\n")

	if p.profile.synopsis != "" {
		b.WriteString("SYNOPSIS\n")
		b.WriteString(indent + p.profile.synopsis + "\n\n")
	}

	b.WriteString("OPTIONS\n")
	for _, h := range p.helps {
		b.WriteString(indent + strings.Join(h.options, ","))
		if h.usage != "" {
			b.WriteString(" " + h.usage)
		}
		b.WriteByte('\n')
		if h.description != "" {
			b.WriteString(indent + indent + h.description + "\n")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
