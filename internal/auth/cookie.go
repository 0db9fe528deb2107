package auth

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
)

// TokenCookieName is the cookie holding the employer bearer token
const TokenCookieName = "talentAuthToken"

// ErrNoToken is returned when the cookie is absent or empty
var ErrNoToken = errors.New("auth: talentAuthToken cookie not set")

// CookieStore reads the auth token from a cookie jar scoped to the talent site
type CookieStore struct {
	jar  http.CookieJar
	site *url.URL
	name string
}

// NewCookieStore builds a store over a fresh jar for siteURL
func NewCookieStore(siteURL string) (*CookieStore, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("auth: create cookie jar: %w", err)
	}
	return NewCookieStoreWithJar(jar, siteURL)
}

// NewCookieStoreWithJar reuses an existing jar, e.g. one shared with an http.Client
func NewCookieStoreWithJar(jar http.CookieJar, siteURL string) (*CookieStore, error) {
	if jar == nil {
		return nil, fmt.Errorf("auth: cookie jar is required")
	}
	u, err := url.Parse(siteURL)
	if err != nil {
		return nil, fmt.Errorf("auth: parse site url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("auth: site url %q must be absolute", siteURL)
	}
	return &CookieStore{jar: jar, site: u, name: TokenCookieName}, nil
}

// Jar exposes the underlying jar
func (s *CookieStore) Jar() http.CookieJar {
	return s.jar
}

// SetToken stores the token cookie, replacing any previous value
func (s *CookieStore) SetToken(token string) {
	s.jar.SetCookies(s.site, []*http.Cookie{{
		Name:  s.name,
		Value: token,
		Path:  "/",
	}})
}

// Token returns the current cookie value; it is read on every call
func (s *CookieStore) Token() (string, error) {
	for _, c := range s.jar.Cookies(s.site) {
		if c.Name == s.name && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", ErrNoToken
}
