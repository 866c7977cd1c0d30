package gemini

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/skillpilot-api/internal/generation"
	"google.golang.org/genai"
)

// mapError categorizes a genai error into the generation sentinels.
func mapError(err error) error {
	code, message, ok := apiError(err)
	if !ok {
		return generation.WrapTransportError(err)
	}

	// Gemini reports a malformed key as 400 INVALID_ARGUMENT.
	if code == http.StatusBadRequest && strings.Contains(message, "API key") {
		code = http.StatusUnauthorized
	}
	return generation.WrapStatusError(code, err)
}

func apiError(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}
	return 0, "", false
}
