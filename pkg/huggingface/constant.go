package huggingface

import "time"

const (
	// DefaultModel is the instruction-tuned model the prompts are written for
	DefaultModel = "meta-llama/Llama-3.2-3B-Instruct"

	// DefaultBaseURL is the serverless inference endpoint; the model id is appended
	DefaultBaseURL = "https://router.huggingface.co/hf-inference/models"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)
