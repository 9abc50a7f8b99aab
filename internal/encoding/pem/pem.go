// Package pem frames DER bytes in the textual envelope OpenSSL emits:
// BEGIN/END armor lines around a Base64 body wrapped at 64 columns.
package pem

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const lineLength = 64

// Encode wraps der in a PEM block with the given label.
func Encode(label string, der []byte) string {
	body := base64.StdEncoding.EncodeToString(der)

	var b strings.Builder
	fmt.Fprintf(&b, "-----BEGIN %s-----\n", label)
	for len(body) > lineLength {
		b.WriteString(body[:lineLength])
		b.WriteByte('\n')
		body = body[lineLength:]
	}
	b.WriteString(body)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "-----END %s-----\n", label)
	return b.String()
}

// Decode strips the armor from a PEM block and returns the Base64
// decoded body. Blank lines and every armor line are ignored, so input
// with extra blank lines, CRLF line endings or missing trailing newlines
// still parses. Any other line is taken as part of the Base64 body.
func Decode(text string) ([]byte, error) {
	var body strings.Builder
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' }) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-----") {
			continue
		}
		body.WriteString(line)
	}
	der, err := base64.StdEncoding.DecodeString(body.String())
	if err != nil {
		return nil, fmt.Errorf("pem: invalid base64 body: %w", err)
	}
	return der, nil
}
