package markup

import "strings"

// Appender is the string-builder abstraction the renderer framework writes
// into. It lets a backend mix borrowed input slices with owned escaped
// fragments without committing to a concrete buffer implementation.
type Appender interface {
	PushString(value string)
	PushOwnedString(value string)
}

// AppendTo lets an Appender implementation itself be drained into another
// Appender, used by backends that build a scratch fragment (for example the
// RST option-like role content) before folding it into the main output.
type AppendTo interface {
	AppendTo(dst Appender)
}

// IntoString materializes an Appender's accumulated content as a string.
type IntoString interface {
	IntoString() string
	Len() int
}

// StringAppender is the simplest Appender: it concatenates directly into a
// single growing buffer.
type StringAppender struct {
	result strings.Builder
}

// NewStringAppender creates an empty StringAppender.
func NewStringAppender() *StringAppender {
	return &StringAppender{}
}

func (s *StringAppender) PushString(value string)      { s.result.WriteString(value) }
func (s *StringAppender) PushOwnedString(value string) { s.result.WriteString(value) }

// AppendTo drains this appender's content into another appender.
func (s *StringAppender) AppendTo(dst Appender) { dst.PushString(s.result.String()) }

// IntoString returns the accumulated string. The appender is left usable
// but conventionally is not reused afterwards.
func (s *StringAppender) IntoString() string { return s.result.String() }

// Len returns the number of bytes accumulated so far.
func (s *StringAppender) Len() int { return s.result.Len() }

// fragment is one pushed string, whether a borrowed slice of the input or
// an owned, independently allocated string; both are stored the same way.
// CollectorAppender defers joining them.
type fragment struct {
	value string
}

// CollectorAppender collects borrowed and owned fragments and defers their
// concatenation until IntoString, so pushing a borrowed input slice never
// allocates.
type CollectorAppender struct {
	length  int
	content []fragment
}

// NewCollectorAppender creates an empty CollectorAppender.
func NewCollectorAppender() *CollectorAppender {
	return &CollectorAppender{}
}

func (c *CollectorAppender) PushString(value string) {
	c.length += len(value)
	c.content = append(c.content, fragment{value: value})
}

func (c *CollectorAppender) PushOwnedString(value string) {
	c.length += len(value)
	c.content = append(c.content, fragment{value: value})
}

// AppendTo drains this appender's fragments into another appender in order.
func (c *CollectorAppender) AppendTo(dst Appender) {
	for _, f := range c.content {
		dst.PushString(f.value)
	}
}

// IntoString concatenates every collected fragment into one string.
func (c *CollectorAppender) IntoString() string {
	var b strings.Builder
	b.Grow(c.length)
	for _, f := range c.content {
		b.WriteString(f.value)
	}
	return b.String()
}

// Len returns the total byte length of all collected fragments.
func (c *CollectorAppender) Len() int { return c.length }
