package tabs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/net/idna"
)

// webSchemes are the schemes a "*" scheme stands for.
var webSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// Pattern is a compiled URL match pattern.
type Pattern struct {
	raw string

	// opaque patterns (no "://") match the whole URL
	opaque glob.Glob

	scheme     string
	host       string
	subdomains bool
	path       glob.Glob
}

// CompilePattern compiles a match pattern. Only "*" is a wildcard; every
// other character matches itself.
func CompilePattern(pattern string) (*Pattern, error) {
	p := &Pattern{raw: pattern}

	scheme, rest, hierarchical := strings.Cut(pattern, "://")
	if !hierarchical {
		g, err := compileWildcard(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
		}
		p.opaque = g
		return p, nil
	}

	host, path, ok := strings.Cut(rest, "/")
	if !ok {
		return nil, fmt.Errorf("invalid match pattern %q: missing path", pattern)
	}
	p.scheme = strings.ToLower(scheme)

	switch {
	case host == "*":
		p.host = "*"
	case strings.HasPrefix(host, "*."):
		p.subdomains = true
		p.host = normalizeHost(host[2:])
	default:
		p.host = normalizeHost(host)
	}

	g, err := compileWildcard("/" + path)
	if err != nil {
		return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}
	p.path = g
	return p, nil
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.raw
}

// Match reports whether the URL matches the pattern.
func (p *Pattern) Match(raw string) bool {
	withoutFragment, _, _ := strings.Cut(raw, "#")

	if p.opaque != nil {
		return p.opaque.Match(withoutFragment)
	}

	u, err := url.Parse(withoutFragment)
	if err != nil || u.Opaque != "" {
		return false
	}

	scheme := strings.ToLower(u.Scheme)
	switch p.scheme {
	case "*":
		if !webSchemes[scheme] {
			return false
		}
	default:
		if scheme != p.scheme {
			return false
		}
	}

	if !p.matchHost(normalizeHost(u.Hostname())) {
		return false
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" || u.ForceQuery {
		path += "?" + u.RawQuery
	}
	return p.path.Match(path)
}

func (p *Pattern) matchHost(host string) bool {
	switch {
	case p.host == "*":
		return true
	case p.subdomains:
		return host == p.host || strings.HasSuffix(host, "."+p.host)
	default:
		return host == p.host
	}
}

// normalizeHost lowercases a host and converts it to its IDNA ASCII form.
// Hosts that fail conversion are compared as given.
func normalizeHost(host string) string {
	host = strings.ToLower(host)
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		return ascii
	}
	return host
}

// compileWildcard compiles a pattern in which only "*" is special.
func compileWildcard(pattern string) (glob.Glob, error) {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = glob.QuoteMeta(part)
	}
	return glob.Compile(strings.Join(parts, "*"))
}
