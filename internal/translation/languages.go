package translation

import (
	"context"
	"strings"
)

// Language is a language supported by the translation endpoint
type Language struct {
	Code string `json:"language"`
	// Name is only set when a display language was requested
	Name string `json:"name,omitempty"`
}

type languagesRequest struct {
	Target string `json:"target,omitempty"`
}

type languagesResponse struct {
	Data *struct {
		Languages []Language `json:"languages"`
	} `json:"data"`
	Error *APIError `json:"error"`
}

// Languages returns the languages the endpoint can translate to. Names are
// given in displayLang, or left empty when displayLang is empty.
func (c *Client) Languages(ctx context.Context, displayLang string) ([]Language, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	var result languagesResponse
	url := strings.TrimSuffix(c.endpoint, "/") + "/languages"
	if err := c.post(ctx, url, languagesRequest{Target: displayLang}, &result); err != nil {
		return nil, err
	}

	if result.Error != nil {
		return nil, result.Error
	}
	if result.Data == nil {
		return nil, nil
	}
	return result.Data.Languages, nil
}
