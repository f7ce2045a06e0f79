package mocks

import "todos/infras/otel"

// noopScope satisfies otel.Scope and records nothing.
type noopScope struct{}

func (noopScope) End()                         {}
func (noopScope) TraceError(error)             {}
func (noopScope) TraceIfError(error)           {}
func (noopScope) AddEvent(string)              {}
func (noopScope) SetAttribute(string, any)     {}
func (noopScope) SetAttributes(map[string]any) {}
func (noopScope) TraceID() string              { return "" }

func NewScope() otel.Scope {
	return noopScope{}
}
