package pagemeta

import (
	"regexp"
	"strings"

	"github.com/nlnwa/whatwg-url/url"
)

// ResolveURL resolves ref against the absolute URL base using WHATWG URL
// parsing: hosts are lowercased, default ports dropped and stray percent
// signs kept as-is.
func ResolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", base, err)
	}
	r, err := b.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL reference %q: %v", ref, err)
	}
	return r.Href(false), nil
}

// HostOf returns the host (and port, if not the scheme's default) of rawURL.
func HostOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host() == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return u.Host(), nil
}

var wwwPrefix = regexp.MustCompile(`www[a-zA-Z0-9]*\.`)

// ProviderNameFromHost derives a human-readable site name from a host,
// e.g. "www.example.com" becomes "example".
func ProviderNameFromHost(host string) string {
	if loc := wwwPrefix.FindStringIndex(host); loc != nil {
		host = host[:loc[0]] + host[loc[1]:]
	}
	host = strings.Replace(host, ".co.", ".", 1)

	labels := strings.Split(host, ".")
	return strings.Join(labels[:len(labels)-1], " ")
}
