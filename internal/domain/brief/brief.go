// Package brief defines the summarization behavior shared by briefing items.
//
// A type opts into briefing by implementing Summarizer. Optional capabilities
// (custom teaser text, author attribution) are expressed as separate small
// interfaces; the free functions in this package upgrade to them when present
// and fall back to documented defaults when not. This keeps the default
// behavior in one place instead of on every implementing type.
package brief

import "fmt"

// Summarizer describes a type that can produce a one-line brief of itself.
type Summarizer interface {
	// Summarize returns a short, human-readable one-line description.
	Summarize() string
}

// TeaserProvider is the optional override hook for Teaser. Types that do not
// implement it observe the default teaser text.
type TeaserProvider interface {
	Teaser() string
}

// AuthorProvider describes a type that can attribute its content to an author.
// AuthorTeaser derives its output from this required method.
type AuthorProvider interface {
	// SummarizeAuthor returns the author attribution, e.g. "@username".
	SummarizeAuthor() string
}

// DefaultTeaser is the text observed by types that do not override Teaser.
const DefaultTeaser = "(Read more...)"

// Teaser returns the teaser line for v.
//
// If v implements TeaserProvider its own teaser is observed exclusively;
// otherwise the default text is returned.
func Teaser(v any) string {
	if p, ok := v.(TeaserProvider); ok {
		return p.Teaser()
	}
	return DefaultTeaser
}

// AuthorTeaser returns the attributed teaser line for p, derived from the
// author attribution the type is required to provide.
func AuthorTeaser(p AuthorProvider) string {
	return fmt.Sprintf("(Read more from %s...)", p.SummarizeAuthor())
}

// Render returns a display string for any value. Summarizers render through
// their own Summarize method; everything else falls back to the teaser, so
// every value passed to a briefing surface has some usable text.
func Render(v any) string {
	if s, ok := v.(Summarizer); ok {
		return s.Summarize()
	}
	return Teaser(v)
}
