package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPFromRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "203.0.113.7:52814"

	assert.Equal(t, "203.0.113.7", ClientIP(r))
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:9999"
	r.Header.Set("X-Forwarded-For", "198.51.100.23, 10.0.0.1")

	assert.Equal(t, "198.51.100.23", ClientIP(r))
}

func TestGetBaseDataTitleKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	data := GetBaseData(r, nil)
	assert.Equal(t, "Arzon Market", data["Title"])

	data = GetBaseData(r, map[string]interface{}{"Title": "Bosh sahifa"})
	assert.Equal(t, "Bosh sahifa", data["Title"])
	assert.NotContains(t, data, "title")
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := HashPassword("sirli-parol")
	assert.NotEmpty(t, hash)
	assert.True(t, PasswordCompare(hash, []byte("sirli-parol")))
	assert.False(t, PasswordCompare(hash, []byte("boshqa-parol")))
}
