package registry_test

import (
	"testing"

	"github.com/aryanoutlaw/docassist/registry"
	"github.com/aryanoutlaw/docassist/services/llm_service"
)

func TestRegisterAndGetLLMService(t *testing.T) {
	reg := registry.New()

	mockLLMService := &llm_service.MockLLMService{}
	reg.RegisterLLMService("mock_llm_service", mockLLMService)

	service, err := reg.GetLLMService("mock_llm_service")
	if err != nil {
		t.Fatalf("Expected to retrieve registered LLM service, got error: %v", err)
	}

	if service != mockLLMService {
		t.Errorf("Expected retrieved service to be the same as registered service")
	}
}

func TestGetUnregisteredLLMService(t *testing.T) {
	reg := registry.New()

	_, err := reg.GetLLMService("unknown_service")
	if err == nil {
		t.Fatal("Expected error when retrieving unregistered LLM service, got nil")
	}

	expectedErrorMsg := "unknown LLM service: unknown_service"
	if err.Error() != expectedErrorMsg {
		t.Errorf("Expected error '%s', got '%s'", expectedErrorMsg, err.Error())
	}
}
