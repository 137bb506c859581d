package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/orbisx_backoffice/internal/core/ports/services"
	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleIdentityProvider exchanges authorization codes obtained by the
// frontend and verifies the returned ID token.
type googleIdentityProvider struct {
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleIdentityProvider returns nil when no client id is configured.
func NewGoogleIdentityProvider(cfg *config.Config) portssvc.GoogleIdentityProvider {
	if cfg.GoogleClientID == "" {
		return nil
	}
	return &googleIdentityProvider{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleIdentityProvider) ExchangeCode(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	raw, ok := token.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, errors.New("google token response has no id_token")
	}

	payload, err := idtoken.Validate(ctx, raw, p.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	identity := &domain.GoogleIdentity{Subject: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		identity.Name = v
	}
	if v, ok := payload.Claims["email_verified"].(bool); ok {
		identity.EmailVerified = v
	}
	return identity, nil
}
