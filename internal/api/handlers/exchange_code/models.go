package exchange_code

import (
	"time"

	"golang.org/x/oauth2"
)

// ExchangeCodeRequest HTTP request model
type ExchangeCodeRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
}

// ExchangeCodeResponse HTTP response model. El frontend usa el idToken para
// el paso de verificación; el resto de los tokens no se persisten acá.
type ExchangeCodeResponse struct {
	IDToken     string `json:"idToken"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
}

// FromToken convierte los tokens de Google en el HTTP response
func FromToken(token *oauth2.Token) *ExchangeCodeResponse {
	idToken, _ := token.Extra("id_token").(string)

	return &ExchangeCodeResponse{
		IDToken:     idToken,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.Expiry.Format(time.RFC3339),
	}
}
