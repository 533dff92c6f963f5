package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		want       string
	}{
		{"direct connection carries a port", "203.0.113.5:41234", "203.0.113.5"},
		{"same ip on a new port keys identically", "203.0.113.5:41235", "203.0.113.5"},
		{"ipv6 with port", "[2001:db8::1]:443", "2001:db8::1"},
		{"bare ip from a forwarding header rewrite", "203.0.113.5", "203.0.113.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/v1/content", nil)
			r.RemoteAddr = tt.remoteAddr
			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}
