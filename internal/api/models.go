package api

import "github.com/phrazzld/skillpilot-api/internal/generation"

// RegisterRequest is the payload for POST /api/auth/register.
// Empty usernames and passwords are accepted.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse reports a successful registration.
type RegisterResponse struct {
	Created bool `json:"created"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse reports a successful login.
type LoginResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
}

// CatalogResponse lists the selectable interests and levels.
type CatalogResponse struct {
	Interests []string `json:"interests"`
	Levels    []string `json:"levels"`
}

// GenerateRequest is the payload for POST /api/pathways/generate.
// The API key is used for this request only.
type GenerateRequest struct {
	APIKey   string `json:"api_key"  validate:"required"`
	Interest string `json:"interest" validate:"required"`
	Level    string `json:"level"    validate:"required"`
}

// PathwayResponse carries a learning pathway. Error is set when AI
// generation failed; Topics is then empty.
type PathwayResponse struct {
	Topics []string         `json:"topics"`
	Error  *GenerationError `json:"error,omitempty"`
}

// GenerationError describes a failed AI generation.
type GenerationError struct {
	Kind    generation.ErrorKind `json:"kind"`
	Message string               `json:"message"`
}

// NewPathwayResponse converts a generation.Result.
func NewPathwayResponse(res generation.Result) PathwayResponse {
	resp := PathwayResponse{Topics: res.Topics}
	if resp.Topics == nil {
		resp.Topics = []string{}
	}
	if res.Err != nil {
		resp.Topics = []string{}
		resp.Error = &GenerationError{
			Kind:    res.Err.Kind,
			Message: res.Err.Kind.Message(),
		}
	}
	return resp
}
