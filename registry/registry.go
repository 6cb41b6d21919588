package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Common namespaces every registry starts with.
const (
	NSRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSXML = "http://www.w3.org/XML/1998/namespace"
	NSDC  = "http://purl.org/dc/elements/1.1/"
	NSXMP = "http://ns.adobe.com/xap/1.0/"
)

var ErrNotRegistered = errors.New("namespace not registered")

type Registry struct {
	uriToPrefix map[string]string
	prefixToURI map[string]string
	aliases     map[aliasKey]*AliasInfo
}

func New() *Registry {
	r := &Registry{
		uriToPrefix: map[string]string{},
		prefixToURI: map[string]string{},
		aliases:     map[aliasKey]*AliasInfo{},
	}
	for _, ns := range []struct{ uri, prefix string }{
		{NSRDF, "rdf"},
		{NSXML, "xml"},
		{NSDC, "dc"},
		{NSXMP, "xmp"},
	} {
		r.uriToPrefix[ns.uri] = ns.prefix
		r.prefixToURI[ns.prefix] = ns.uri
	}
	return r
}

// RegisterNamespace associates uri with a prefix derived from suggested and
// returns the prefix actually registered. When suggested is taken by another
// URI, numeric suffixes -1-, -2-, ... are tried in order. Registering an
// already known URI returns its existing prefix.
func (r *Registry) RegisterNamespace(uri, suggested string) (string, error) {
	if uri == "" || suggested == "" {
		return "", fmt.Errorf("empty namespace registration %q -> %q", uri, suggested)
	}
	if p, ok := r.uriToPrefix[uri]; ok {
		return p, nil
	}
	suggested = strings.TrimSuffix(suggested, ":")
	prefix := suggested
	for i := 1; ; i++ {
		if _, taken := r.prefixToURI[prefix]; !taken {
			break
		}
		prefix = fmt.Sprintf("%s-%d-", suggested, i)
	}
	r.uriToPrefix[uri] = prefix
	r.prefixToURI[prefix] = uri
	return prefix, nil
}

// PrefixForURI returns the registered prefix for uri.
func (r *Registry) PrefixForURI(uri string) (string, error) {
	p, ok := r.uriToPrefix[uri]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotRegistered, uri)
	}
	return p, nil
}

// URIForPrefix returns the namespace URI registered under prefix.
func (r *Registry) URIForPrefix(prefix string) (string, error) {
	u, ok := r.prefixToURI[strings.TrimSuffix(prefix, ":")]
	if !ok {
		return "", fmt.Errorf("%w: prefix %q", ErrNotRegistered, prefix)
	}
	return u, nil
}

// DeleteNamespace removes uri and its prefix. Unknown URIs are a no-op.
func (r *Registry) DeleteNamespace(uri string) {
	p, ok := r.uriToPrefix[uri]
	if !ok {
		return
	}
	delete(r.uriToPrefix, uri)
	delete(r.prefixToURI, p)
}

// Namespaces returns the registered URIs keyed by prefix.
func (r *Registry) Namespaces() map[string]string {
	res := make(map[string]string, len(r.prefixToURI))
	for p, u := range r.prefixToURI {
		res[p] = u
	}
	return res
}
