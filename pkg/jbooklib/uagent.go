package jbooklib

import "strings"

// DEF_USER_AGENT mimics Chrome on Windows; several comptroller hosts
// refuse requests carrying non-browser agents.
const DEF_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/131.0.0.0 Safari/537.36"

// UserAgents maps short names accepted by the -user-agent flag to full
// User-Agent strings.
var UserAgents = map[string]string{
	"chrome":  DEF_USER_AGENT,
	"firefox": "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/114.0",
	"edge":    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36 Edg/131.0.0.0",
	"jbookdl": "jbookdl/1.0",
}

// ResolveUserAgent maps a short agent name to its full User-Agent string.
// Unrecognized values are passed through verbatim so callers can supply a
// literal agent string.
func ResolveUserAgent(s string) (ua string) {
	r, ok := UserAgents[strings.ToLower(s)]
	if !ok {
		ua = s
		return
	}
	ua = r
	return
}
