package verify_token

import "github.com/mamicio/SG-StudioService/internal/service/auth"

// VerifyTokenRequest HTTP request model
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse HTTP response model. Reason solo viene cuando la
// identidad es válida pero no autorizada; SessionToken solo cuando sí lo es.
type VerifyTokenResponse struct {
	Authorized   bool   `json:"authorized"`
	Email        string `json:"email,omitempty"`
	Name         string `json:"name,omitempty"`
	Reason       string `json:"reason,omitempty"`
	SessionToken string `json:"sessionToken,omitempty"`
}

// FromLoginResult convierte el resultado del servicio en el HTTP response
func FromLoginResult(result *auth.LoginResult) *VerifyTokenResponse {
	return &VerifyTokenResponse{
		Authorized:   result.Authorized,
		Email:        result.Email,
		Name:         result.Name,
		Reason:       result.Reason,
		SessionToken: result.SessionToken,
	}
}
