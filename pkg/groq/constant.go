package groq

const (
	// DefaultBaseURL is the Groq OpenAI-compatible API endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use.
	DefaultModel = "llama-3.1-8b-instant"
)
