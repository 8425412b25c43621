package pagemeta_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"relative file", "http://x.com/a", "favicon.ico", "http://x.com/favicon.ico"},
		{"relative to directory", "http://x.com/docs/page", "img/logo.png", "http://x.com/docs/img/logo.png"},
		{"root relative", "https://example.com/docs/page", "/logo.png", "https://example.com/logo.png"},
		{"protocol relative", "https://example.com/", "//cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"absolute", "http://x.com/a", "https://other.com/b", "https://other.com/b"},
		{"adds root path", "http://www.example.com", "http://www.example.com", "http://www.example.com/"},
		{"trims whitespace", "http://x.com/", "  /a.png ", "http://x.com/a.png"},
		{"keeps a stray percent sign", "http://x.com/a", "/img/100%.png", "http://x.com/img/100%.png"},
		{"keeps valid escapes", "http://x.com/a", "/img/a%20b.png", "http://x.com/img/a%20b.png"},
		{"lowercases the host", "HTTP://X.COM/a", "favicon.ico", "http://x.com/favicon.ico"},
		{"drops the default http port", "HTTP://X.COM:80/a", "favicon.ico", "http://x.com/favicon.ico"},
		{"drops the default https port", "https://x.com:443/a", "b.png", "https://x.com/b.png"},
		{"keeps other ports", "http://x.com:8080/a", "b.png", "http://x.com:8080/b.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pagemeta.ResolveURL(tt.base, tt.ref)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects a relative base", func(t *testing.T) {
		t.Parallel()

		_, err := pagemeta.ResolveURL("/relative", "a.png")

		require.Error(t, err)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})

	t.Run("rejects an unparsable base", func(t *testing.T) {
		t.Parallel()

		_, err := pagemeta.ResolveURL("://bad", "a.png")

		require.Error(t, err)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})
}

func TestHostOf(t *testing.T) {
	t.Parallel()

	t.Run("returns host with port", func(t *testing.T) {
		t.Parallel()

		host, err := pagemeta.HostOf("https://www.example.com:8080/path?q=1")

		require.NoError(t, err)
		assert.Equal(t, "www.example.com:8080", host)
	})

	t.Run("lowercases the host", func(t *testing.T) {
		t.Parallel()

		host, err := pagemeta.HostOf("https://WWW.Example.COM/")

		require.NoError(t, err)
		assert.Equal(t, "www.example.com", host)
	})

	t.Run("drops default ports", func(t *testing.T) {
		t.Parallel()

		host, err := pagemeta.HostOf("https://www.example.com:443/")

		require.NoError(t, err)
		assert.Equal(t, "www.example.com", host)
	})

	t.Run("rejects URLs without a host", func(t *testing.T) {
		t.Parallel()

		_, err := pagemeta.HostOf("just/a/path")

		require.Error(t, err)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	})
}

func TestProviderNameFromHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{"www.example.com", "example"},
		{"www2.example.co.uk", "example"},
		{"example.co.uk", "example"},
		{"news.bbc.co.uk", "news bbc"},
		{"blog.example.com", "blog example"},
		{"wwwfoo.example.org", "example"},
		{"localhost", ""},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagemeta.ProviderNameFromHost(tt.host))
		})
	}
}
