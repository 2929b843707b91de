// Package frameworks defines the closed set of agent-orchestration frameworks
// this library can target, and the small number of types shared by every
// framework-specific client: the opaque token provider, the client handle and
// tool-binding contracts, chat message shapes, and per-call options.
//
// Each subpackage implements the client for one framework. The internal
// directory contains the shared Azure OpenAI wire client those subpackages
// are built on.
//
// The `frameworks.go` file contains the Framework enumeration and its
// capability metadata.
//
// The `options.go` file provides options to configure individual calls.
package frameworks
