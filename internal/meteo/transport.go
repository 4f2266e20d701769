package meteo

import (
	"fmt"
	"net/http"
	"time"
)

// maxAgeTransport forces a max-age on successful responses so the HTTP cache
// in front of it stores them for the configured TTL. The forecast API itself
// sends no caching headers.
type maxAgeTransport struct {
	ttl  time.Duration
	next http.RoundTripper
}

func (t *maxAgeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK {
		resp.Header.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(t.ttl.Seconds())))
		resp.Header.Del("Expires")
		resp.Header.Del("Pragma")
	}
	return resp, nil
}
