package llmprovider

// Provider names accepted in llm.providers[].name
const (
	ProviderHuggingFace = "huggingface"
	ProviderGemini      = "gemini"
	ProviderQwen        = "qwen"
	ProviderDeepSeek    = "deepseek"
)
