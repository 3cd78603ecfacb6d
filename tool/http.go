package tool

import (
	"net/http"
	"net/http/cookiejar"
	"time"
)

// NewHTTPClient creates an HTTP client with a cookie jar so the session
// cookie issued by the server is carried on every subsequent request.
// No timeout is set: a stalled upload hangs until the caller's context ends.
func NewHTTPClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     300 * time.Millisecond,
			DisableKeepAlives:   false,
		},
		Jar: jar,
	}
}
