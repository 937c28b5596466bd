package get_auth_config

// AuthConfigResponse HTTP response model
type AuthConfigResponse struct {
	ClientID string `json:"clientId"`
}
