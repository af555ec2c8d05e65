package minio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/ronghua/media/a.png",
		PublicURL("cdn.example.com/", true, "ronghua", "/media/a.png"))
	assert.Equal(t, "http://127.0.0.1:9000/ronghua/media/a.png",
		PublicURL("127.0.0.1:9000", false, "ronghua", "media/a.png"))
}

func TestHostOf(t *testing.T) {
	host, ssl := hostOf("http://127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", host)
	assert.False(t, ssl)

	host, ssl = hostOf("https://cdn.example.com")
	assert.Equal(t, "cdn.example.com", host)
	assert.True(t, ssl)

	host, ssl = hostOf("cdn.example.com")
	assert.Equal(t, "cdn.example.com", host)
	assert.True(t, ssl)
}
