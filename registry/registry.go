package registry

import (
	"fmt"

	"github.com/aryanoutlaw/docassist/services/llm_service"
)

// Registry holds the model backends the process can route prompts to,
// keyed by the name used in configuration (gemini, openai, demo).
type Registry struct {
	llmServices map[string]llm_service.LLMService
}

func New() *Registry {
	return &Registry{
		llmServices: make(map[string]llm_service.LLMService),
	}
}

// RegisterLLMService registers a new LLM service under the given name.
func (r *Registry) RegisterLLMService(name string, service llm_service.LLMService) {
	r.llmServices[name] = service
}

// GetLLMService returns an LLM service by name.
func (r *Registry) GetLLMService(name string) (llm_service.LLMService, error) {
	service, ok := r.llmServices[name]
	if !ok {
		return nil, fmt.Errorf("unknown LLM service: %s", name)
	}
	return service, nil
}
