package video

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocatorHost(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{name: "empty falls back", host: "", want: DefaultHost},
		{name: "blank falls back", host: "   ", want: DefaultHost},
		{name: "plain host", host: "www.youtube-nocookie.com", want: "www.youtube-nocookie.com"},
		{name: "scheme stripped", host: "https://video.example.com/", want: "video.example.com"},
		{name: "http scheme stripped", host: "http://video.example.com", want: "video.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLocator(tt.host).Host())
		})
	}

	var zero Locator
	assert.Equal(t, DefaultHost, zero.Host())
}

func TestLocatorURLs(t *testing.T) {
	l := NewLocator("")

	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", l.EmbedURL(sampleID))
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", l.WatchURL(sampleID))
}

func TestLocatorLocate(t *testing.T) {
	l := NewLocator("www.youtube.com")
	r := NewResolver()

	got, err := l.Locate(r, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", got)

	// Unknown identifiers are passed through unchanged.
	got, err = l.Locate(r, "https://youtu.be/nope")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/nope", got)

	got, err = l.Locate(r, "not a url at all")
	assert.Empty(t, got)
	assert.True(t, errors.Is(err, ErrNoIdentifierFound))
}
