// Package getopt dispatches command-line options to registered handlers.
//
// A Parser owns a value of the caller-defined type T. Each registered option
// token is bound to a Handler which receives a pointer to that value and a
// Cursor through which it may consume the arguments that follow the option
// or report a parse error.
package getopt

// DefaultName is substituted for an empty program name in the usage text.
const DefaultName = "[PROGRAM]"

// Cursor is the view of a running parse given to handlers.
type Cursor interface {
	// HasNext reports whether an argument follows the current one.
	HasNext() bool
	// Next advances to the following argument and returns it. It panics if
	// HasNext is false.
	Next() string
	// Error records a parse error. Only the first error of a parse is kept
	// and parsing stops after the current handler returns.
	Error(msg string)
}

// Handler is invoked for every occurrence of a registered option.
type Handler[T any] func(state *T, c Cursor)

// Simple lifts fn into a Handler that ignores both of its arguments.
func Simple[T any](fn func()) Handler[T] {
	return func(*T, Cursor) {
		fn()
	}
}

// ParseError is the error recorded when an option is unknown or a handler
// reports a failure.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

type profile struct {
	name        string
	description string
	synopsis    string
}

type help struct {
	options     []string
	usage       string
	description string
}

type Parser[T any] struct {
	state    T
	handlers map[string]Handler[T]
	helps    []help
	hook     Handler[T]
	profile  profile

	args []string
	idx  int
	err  *ParseError
}

// SimpleParser is a Parser for callers that keep results outside the parser,
// typically in variables captured by Simple handlers.
type SimpleParser = Parser[struct{}]

// New returns a Parser with an empty option set and the zero value of T as
// its state.
func New[T any](name, description, synopsis string) *Parser[T] {
	if name == "" {
		name = DefaultName
	}
	return &Parser[T]{
		handlers: map[string]Handler[T]{},
		profile: profile{
			name:        name,
			description: description,
			synopsis:    synopsis,
		},
	}
}

func NewSimple(name, description, synopsis string) *SimpleParser {
	return New[struct{}](name, description, synopsis)
}

// HelpOption sets an optional field of the help entry of an option.
type HelpOption func(*help)

// WithUsage sets the placeholder shown after the option names, e.g. "STRING".
func WithUsage(s string) HelpOption {
	return func(h *help) {
		h.usage = s
	}
}

// WithDescription sets the line shown below the option names.
func WithDescription(s string) HelpOption {
	return func(h *help) {
		h.description = s
	}
}

// Add registers h for a single option token.
func (p *Parser[T]) Add(option string, h Handler[T], opts ...HelpOption) {
	p.AddAliases([]string{option}, h, opts...)
}

// AddAliases registers h for every token in options and appends one help
// entry listing them in the given order.
//
// A token that is already registered is rebound to h. Its earlier help entry
// is left in place.
func (p *Parser[T]) AddAliases(options []string, h Handler[T], opts ...HelpOption) {
	for _, opt := range options {
		p.handlers[opt] = h
	}

	v := help{
		options: append([]string(nil), options...),
	}
	for _, fn := range opts {
		fn(&v)
	}
	p.helps = append(p.helps, v)
}

// SetCompletionHook sets a handler that runs once after every argument was
// dispatched without error. A nil hook disables it.
func (p *Parser[T]) SetCompletionHook(h Handler[T]) {
	p.hook = h
}

// Parse dispatches args[1:] to the registered handlers. args[0] is taken to
// be the program name and is never looked up.
//
// Parsing stops at the first error. It returns true if no error was recorded
// by a handler, by an unknown option, or by the completion hook.
func (p *Parser[T]) Parse(args []string) bool {
	p.err = nil
	p.args = args
	c := &cursor[T]{p: p}

	for p.idx = 1; p.idx < len(p.args); p.idx++ {
		opt := p.args[p.idx]
		if h, ok := p.handlers[opt]; ok {
			h(&p.state, c)
		} else {
			c.Error("Unknown option: " + opt)
		}

		if p.err != nil {
			return false
		}
	}

	if p.hook != nil {
		p.hook(&p.state, c)
	}
	return p.err == nil
}

func (p *Parser[T]) HasError() bool {
	return p.err != nil
}

// ErrorMessage returns the message of the recorded error or an empty string.
func (p *Parser[T]) ErrorMessage() string {
	if p.err == nil {
		return ""
	}
	return p.err.Message
}

// Err returns the recorded error as a *ParseError, or nil.
func (p *Parser[T]) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// State returns a pointer to the parsed state.
func (p *Parser[T]) State() *T {
	return &p.state
}

// Result returns a copy of the parsed state.
func (p *Parser[T]) Result() T {
	return p.state
}

type cursor[T any] struct {
	p *Parser[T]
}

func (c *cursor[T]) HasNext() bool {
	return c.p.idx < len(c.p.args)-1
}

func (c *cursor[T]) Next() string {
	if c.p.args == nil {
		panic("getopt: Next called without arguments")
	} else if !c.HasNext() {
		panic("getopt: Next called after the last argument")
	}
	c.p.idx++
	return c.p.args[c.p.idx]
}

func (c *cursor[T]) Error(msg string) {
	if c.p.err == nil {
		c.p.err = &ParseError{Message: msg}
	}
}
