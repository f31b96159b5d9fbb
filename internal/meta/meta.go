// Where: internal/meta/meta.go
// What: Tool-local metadata constants.
// Why: Keep the name fragments baked into generated code in one place.
package meta

const (
	// Project Identity
	AppName = "swiftentry"

	// Generated-Code Contract
	// The generated program concatenates ProxyInfix with a handler name
	// read from HandlerEnvVar and resolves the resulting class against
	// the companion runtime library.
	ProxyInfix    = "._Proxy"
	HandlerEnvVar = "SWIFT_ENTRY_HANDLER"
)
