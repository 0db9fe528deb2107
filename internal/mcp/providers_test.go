package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/manage-jobs/internal/auth"
	"github.com/honeycarbs/manage-jobs/internal/config"
	"github.com/honeycarbs/manage-jobs/internal/domain/joblist"
	"github.com/honeycarbs/manage-jobs/pkg/logging"
)

func TestListingClientSharesCookieJar(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: auth.TokenCookieName, Value: "rotated", Path: "/"})
		w.WriteHeader(http.StatusOK)
	}))
	defer api.Close()

	cfg := config.Config{SiteURL: api.URL, AuthToken: "seed", ListingBaseURL: api.URL, ListingTimeout: time.Second}
	store, err := provideCookieStore(cfg)
	require.NoError(t, err)

	tok, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "seed", tok)

	lc := provideListingConfig(cfg, store)
	require.NotNil(t, lc.HTTPClient)
	assert.Equal(t, time.Second, lc.HTTPClient.Timeout)

	resp, err := lc.HTTPClient.Get(api.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	tok, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "rotated", tok)

	u, _ := url.Parse(api.URL)
	assert.NotEmpty(t, lc.HTTPClient.Jar.Cookies(u))
}

func TestProvideControllerSetsLoader(t *testing.T) {
	ctrl, err := provideController(config.Config{PageSize: 4, ListingTimeout: time.Second}, logging.NewNop(), oneJob{}, tok{})
	require.NoError(t, err)
	defer func() { _ = ctrl.Shutdown(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	res, err := ctrl.Mount(context.Background()).Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, joblist.StatusLoaded, res.Status)

	v := ctrl.View()
	assert.False(t, v.Loader.IsLoading())
	assert.Equal(t, []string{joblist.RoleEmployer, joblist.RoleRecruiter}, v.Loader.AllowedUsers())
}
