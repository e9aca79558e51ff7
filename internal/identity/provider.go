package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
)

var ErrNotReady error = errors.New("identity provider not ready")
var ErrAuth error = errors.New("authentication failed")

// Provider adapts the external social-login/key-custody service. Login and
// Logout are rejected with ErrNotReady until Init has confirmed the remote
// service is reachable.
type Provider struct {
	client  HTTPClient
	baseURL string
	apiKey  string
	ready   atomic.Bool
}

func NewProvider(client HTTPClient, baseURL, apiKey string) *Provider {
	return &Provider{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Init probes the provider's health endpoint and marks the adapter ready.
func (p *Provider) Init(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v1/ready", nil)
	if err != nil {
		return fmt.Errorf("build readiness request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("readiness probe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: readiness probe returned status %d", ErrNotReady, resp.StatusCode)
	}

	p.ready.Store(true)
	return nil
}

func (p *Provider) Dispose() {
	p.ready.Store(false)
}

// Login exchanges the provider-issued session token for a verified identity.
func (p *Provider) Login(ctx context.Context, providerToken string) (Identity, error) {
	if !p.ready.Load() {
		return Identity{}, ErrNotReady
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/sessions/verify", nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("X-Session-Token", providerToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("verify session: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Identity{}, fmt.Errorf("%w: provider returned status %d", ErrAuth, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return Identity{}, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Identity{}, fmt.Errorf("decode session response: %w", err)
	}

	return normalize(session)
}

// Logout revokes all provider sessions of the external user.
func (p *Provider) Logout(ctx context.Context, externalID string) error {
	if !p.ready.Load() {
		return ErrNotReady
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.baseURL+"/v1/sessions/"+externalID, nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("%w: provider returned status %d", ErrAuth, resp.StatusCode)
	}

	return nil
}

// normalize validates the loosely structured provider payload once, at the
// boundary. Anything downstream only ever sees an Identity.
func normalize(session sessionResponse) (Identity, error) {
	if session.UserID == "" {
		return Identity{}, fmt.Errorf("%w: provider response missing user id", ErrAuth)
	}
	if session.Wallet.Address == "" {
		return Identity{}, fmt.Errorf("%w: provider response missing wallet address", ErrAuth)
	}

	return Identity{
		ExternalID:    session.UserID,
		WalletAddress: session.Wallet.Address,
		Social: SocialIdentity{
			Handle:      optional(session.Twitter.Username),
			DisplayName: optional(session.Twitter.Name),
			AvatarURL:   optional(session.Twitter.ProfilePictureURL),
		},
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
