package ipintel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.7", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ip": "203.0.113.7",
			"org": "AS131445 Shop Fiber Broadband",
			"privacy": {"vpn": false, "proxy": false, "tor": false, "hosting": false},
			"asn": {"asn": "AS131445", "name": "Shop Fiber"}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", 2*time.Second, nil, time.Hour)

	info, raw, err := client.Lookup(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "203.0.113.7", info.IP)
	require.NotNil(t, info.ASN)
	assert.Equal(t, "AS131445", info.ASN.ASN)
	require.NotNil(t, info.Privacy)
	assert.False(t, info.Privacy.VPN)
}

func TestLookupVendorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", 2*time.Second, nil, time.Hour)

	_, _, err := client.Lookup(context.Background(), "203.0.113.7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestLookupUnreachable(t *testing.T) {
	// Port 1 on localhost should refuse the connection immediately.
	client := NewClient("http://127.0.0.1:1", "", 500*time.Millisecond, nil, time.Hour)

	_, _, err := client.Lookup(context.Background(), "203.0.113.7")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
