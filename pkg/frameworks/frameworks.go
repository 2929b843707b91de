package frameworks

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Framework is the target agent-orchestration framework.
type Framework string

const (
	// FrameworkAutoGen is the AutoGen framework.
	FrameworkAutoGen Framework = "AUTOGEN"
	// FrameworkLangGraph is the LangGraph framework.
	FrameworkLangGraph Framework = "LANGGRAPH"
	// FrameworkOpenAIAgents is the OpenAI Agents framework.
	FrameworkOpenAIAgents Framework = "OPENAI_AGENTS"
)

// AllFrameworks returns the supported frameworks in stable order.
func AllFrameworks() []Framework {
	return []Framework{
		FrameworkAutoGen,
		FrameworkLangGraph,
		FrameworkOpenAIAgents,
	}
}

// ParseFramework returns the Framework for the given name.
// The match is case-insensitive and ignores surrounding whitespace.
func ParseFramework(name string) (Framework, error) {
	switch f := Framework(strings.ToUpper(strings.TrimSpace(name))); f {
	case FrameworkAutoGen, FrameworkLangGraph, FrameworkOpenAIAgents:
		return f, nil
	}
	return "", errors.Errorf("unknown framework: %s", name)
}

// Valid reports whether the framework is one of the supported set.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkAutoGen, FrameworkLangGraph, FrameworkOpenAIAgents:
		return true
	}
	return false
}

func (f Framework) String() string {
	return string(f)
}

// Capability is a bitmask indicating supported features of a framework client.
type Capability uint64

const (
	// Function/tool calling by the model
	CapabilityFunctionCalling Capability = 1 << iota

	// Structured response formats
	CapabilityJSONOutput
	CapabilityStructuredOutput

	// Multimodal input
	CapabilityVision

	// Tools attached directly to the client handle,
	// rather than to the agent definition
	CapabilityToolBinding
)

var frameworkCapabilities = map[Framework]Capability{
	FrameworkAutoGen: CapabilityFunctionCalling |
		CapabilityJSONOutput |
		CapabilityStructuredOutput |
		CapabilityVision,

	FrameworkLangGraph: CapabilityFunctionCalling |
		CapabilityJSONOutput |
		CapabilityStructuredOutput |
		CapabilityVision |
		CapabilityToolBinding,

	// Tools are attached at the agent level
	FrameworkOpenAIAgents: CapabilityFunctionCalling |
		CapabilityJSONOutput |
		CapabilityStructuredOutput |
		CapabilityVision,
}

// FrameworkCapabilities returns the capability set of the framework.
func FrameworkCapabilities(f Framework) Capability {
	return frameworkCapabilities[f]
}

// Supports reports whether the framework supports the capability.
func (f Framework) Supports(cap Capability) bool {
	return FrameworkCapabilities(f)&cap != 0
}
