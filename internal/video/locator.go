package video

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultHost is the video host used when none is configured
const DefaultHost = "www.youtube.com"

// URL templates
const (
	EmbedURLTemplate = "https://%s/embed/%s"
	WatchURLTemplate = "https://%s/watch?v=%s"
)

// ErrNoIdentifierFound is returned by Locate when the input holds no identifier
var ErrNoIdentifierFound = errors.New("no video identifier found")

// Locator turns identifiers into playback URLs on a single host.
// Identifiers are not checked against the host; unknown ones pass through.
type Locator struct {
	host string
}

// NewLocator creates a locator for host. An empty host falls back to DefaultHost.
func NewLocator(host string) Locator {
	host = strings.TrimSpace(host)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		host = DefaultHost
	}
	return Locator{host: host}
}

// Host returns the configured host
func (l Locator) Host() string {
	if l.host == "" {
		return DefaultHost
	}
	return l.host
}

// EmbedURL returns the embeddable playback URL for id
func (l Locator) EmbedURL(id ID) string {
	return fmt.Sprintf(EmbedURLTemplate, l.Host(), id)
}

// WatchURL returns the regular watch page URL for id
func (l Locator) WatchURL(id ID) string {
	return fmt.Sprintf(WatchURLTemplate, l.Host(), id)
}

// Locate resolves input with r and returns its embed URL
func (l Locator) Locate(r *Resolver, input string) (string, error) {
	id, ok := r.Resolve(input)
	if !ok {
		return "", ErrNoIdentifierFound
	}
	return l.EmbedURL(id), nil
}
