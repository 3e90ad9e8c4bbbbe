package configs

import "time"

// Gemini holds configuration for the generative AI gateway. APIKey is the
// Google AI Studio key; an empty key is accepted at startup, in which
// case every call fails and the fallback values are served. Timeout
// bounds a single generateContent call.
type Gemini struct {
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"gemini-3-flash-preview"`
	BaseURL string        `env:"BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
