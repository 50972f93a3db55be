package config

// DefaultHuggingFaceModel is used when only HUGGINGFACE_API_KEY is configured.
const DefaultHuggingFaceModel = "meta-llama/Llama-3.2-3B-Instruct"
