// Package callback builds and parses the provider callback URLs that carry
// tenant and caller identity between webhook hops. Call session ids do not
// reliably survive forwarding, so correlation travels in the URL instead.
package callback

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Route is a webhook path that receives a provider callback.
type Route string

const (
	RouteSMSStatus    Route = "/webhooks/sms/status"
	RouteDialStatus   Route = "/webhooks/voice/dial-status"
	RouteScreen       Route = "/webhooks/voice/screen"
	RouteScreenResult Route = "/webhooks/voice/screen-result"
	RouteRecording    Route = "/webhooks/voice/recording"
)

const (
	paramTenant = "tenant_id"
	paramCaller = "caller"
)

var (
	ErrMissingTenant = errors.New("callback: tenant_id missing")
	ErrMissingCaller = errors.New("callback: caller missing")
)

// Params is the identity embedded in a callback URL.
type Params struct {
	TenantID uuid.UUID
	Caller   string
}

// Builder renders callback URLs against the public base URL of the service.
type Builder struct {
	base *url.URL
}

func NewBuilder(publicBaseURL string) (*Builder, error) {
	u, err := url.Parse(strings.TrimRight(publicBaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("callback: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("callback: base url %q must be absolute", publicBaseURL)
	}
	return &Builder{base: u}, nil
}

// URL returns the absolute callback URL for route with p embedded.
// A zero TenantID or empty Caller is omitted.
func (b *Builder) URL(route Route, p Params) string {
	u := *b.base
	u.Path = strings.TrimRight(b.base.Path, "/") + string(route)

	q := url.Values{}
	if p.TenantID != uuid.Nil {
		q.Set(paramTenant, p.TenantID.String())
	}
	if p.Caller != "" {
		q.Set(paramCaller, p.Caller)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Parse extracts Params from the query of a callback request. Both the
// tenant and the caller are required.
func Parse(q url.Values) (Params, error) {
	raw := q.Get(paramTenant)
	if raw == "" {
		return Params{}, ErrMissingTenant
	}
	tenantID, err := uuid.Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("callback: invalid tenant_id %q: %w", raw, err)
	}
	caller := strings.TrimSpace(q.Get(paramCaller))
	if caller == "" {
		return Params{}, ErrMissingCaller
	}
	return Params{TenantID: tenantID, Caller: caller}, nil
}

// ReviewLink returns the tracked review link for a request. It redirects to
// the tenant review page after recording the click.
func (b *Builder) ReviewLink(requestID uuid.UUID) string {
	u := *b.base
	u.Path = strings.TrimRight(b.base.Path, "/") + "/r/" + requestID.String()
	u.RawQuery = ""
	return u.String()
}
