package match

type not struct {
	m Matcher
}

// Not inverts m. The wrapped matcher's message is passed through unchanged.
func Not(m any) Matcher {
	return not{m: Ensure(m)}
}

func (n not) Description() string { return "not " + n.m.Description() }

func (n not) Match(subject any) Result {
	r := n.m.Match(subject)
	return Result{Matched: !r.Matched, Message: r.Message}
}

type described struct {
	m    Matcher
	desc string
}

// Describe evaluates like m but describes itself as desc.
func Describe(m any, desc string) Matcher {
	return described{m: Ensure(m), desc: desc}
}

func (d described) Description() string      { return d.desc }
func (d described) Match(subject any) Result { return d.m.Match(subject) }

type anyOf struct {
	ms []Matcher
}

// AnyOf matches when at least one of ms does, stopping at the first match.
// With no arguments it never matches. The message is the one produced by the
// deciding matcher, and empty when none matched.
func AnyOf(ms ...any) Matcher {
	return anyOf{ms: ensureAll(ms)}
}

func (a anyOf) Description() string { return "any of(" + list(a.ms) + ")" }

func (a anyOf) Match(subject any) Result {
	for _, m := range a.ms {
		if r := m.Match(subject); r.Matched {
			return r
		}
	}
	return Result{}
}

type allOf struct {
	ms []Matcher
}

// AllOf matches when every one of ms does, stopping at the first failure.
// With no arguments it always matches. The message is the first failing
// matcher's, and empty when all matched.
func AllOf(ms ...any) Matcher {
	return allOf{ms: ensureAll(ms)}
}

func (a allOf) Description() string { return "all of(" + list(a.ms) + ")" }

func (a allOf) Match(subject any) Result {
	for _, m := range a.ms {
		if r := m.Match(subject); !r.Matched {
			return r
		}
	}
	return Result{Matched: true}
}

type noneOf struct {
	ms []Matcher
}

// NoneOf matches when none of ms does; it behaves as Not(AnyOf(ms...)). The
// message is that of the first matcher that did match.
func NoneOf(ms ...any) Matcher {
	return noneOf{ms: ensureAll(ms)}
}

func (n noneOf) Description() string { return "none of(" + list(n.ms) + ")" }

func (n noneOf) Match(subject any) Result {
	for _, m := range n.ms {
		if r := m.Match(subject); r.Matched {
			return Result{Message: r.Message}
		}
	}
	return Result{Matched: true}
}
