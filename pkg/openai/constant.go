package openai

const (
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "gpt-4o"
)
