// Package clientfactory translates a canonical Azure OpenAI configuration
// into clients shaped for the supported agent frameworks (AutoGen, LangGraph,
// OpenAI Agents), handling per-framework field renaming, global registration
// side effects, and tool binding.
package clientfactory
