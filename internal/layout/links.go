package layout

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// linkLabel shortens a profile URL for print: scheme, query and a leading
// "www." are dropped, so "https://www.github.com/jane/" reads
// "github.com/jane". Anything that is not a URL on a public suffix is
// returned as given.
func linkLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.ToLower(u.Hostname())
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return raw
	}
	if host == "www."+domain {
		host = domain
	}
	return host + strings.TrimRight(u.EscapedPath(), "/")
}
