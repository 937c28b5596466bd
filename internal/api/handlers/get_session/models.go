package get_session

import "github.com/mamicio/SG-StudioService/internal/service/auth"

// SessionResponse HTTP response model
type SessionResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// FromSession convierte la sesión verificada en el HTTP response
func FromSession(session *auth.Session) *SessionResponse {
	return &SessionResponse{
		Email: session.Email,
		Name:  session.Name,
	}
}
