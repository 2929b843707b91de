// Package tools defines the Tool interface bound to framework clients, including
// the parameter schema derived from typed inputs. Tools enable agents to interact
// with external systems and APIs in a structured, extensible way.
package tools
