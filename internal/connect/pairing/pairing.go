// Package pairing handles WalletConnect pairing URIs on their way to the
// Kontos web wallet. The wallet frontend cannot consume a raw wc: URI, it
// reconstructs the pairing from query parameters instead.
package pairing

import (
	"strings"

	"github.com/pkg/errors"
)

// Scheme is the literal prefix every WalletConnect pairing URI starts with.
const Scheme = "wc:"

// ErrInvalidFormat is returned when the input does not have the
// wc:<topic>@<version>?<query> shape. Callers must treat it as a hard
// failure and not hand the URI to the wallet endpoint.
var ErrInvalidFormat = errors.New("pairing: invalid uri format")

// Reformat converts a protocol-native pairing URI into the query fragment
// the Kontos web endpoint expects.
//
//	wc:<topic>@<version>?<query>  ->  ?wc=<topic>@<version>&<query>
//
// Only the first ? splits prefix from query; everything after it is passed
// through verbatim, including further ? or & characters. The internal
// structure of the query part is not validated.
func Reformat(uri string) (string, error) {
	prefix, query, err := split(uri)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len("?wc=&") + len(prefix) + len(query))
	b.WriteString("?wc=")
	b.WriteString(prefix)
	b.WriteString("&")
	b.WriteString(query)

	return b.String(), nil
}

// Topic extracts the <topic>@<version> segment for display and persistence.
// It applies the same shape checks as Reformat.
func Topic(uri string) (string, error) {
	prefix, _, err := split(uri)
	if err != nil {
		return "", err
	}

	return prefix, nil
}

// split tokenizes the URI: scheme check first, then a single cut on the
// first ?. An empty query after a trailing ? is an error, not an empty
// substitution.
func split(uri string) (prefix string, query string, err error) {
	rest, ok := strings.CutPrefix(uri, Scheme)
	if !ok {
		return "", "", errors.WithStack(ErrInvalidFormat)
	}

	prefix, query, found := strings.Cut(rest, "?")
	if !found || query == "" {
		return "", "", errors.WithStack(ErrInvalidFormat)
	}

	return prefix, query, nil
}
