package sparsecs

import "fmt"

// fatalHandler receives every contract-violation report. Contract violations
// are caller bugs (out-of-range entity IDs, fetching a component that was
// never added, exceeding the entity capacity), not runtime conditions, so
// there is no recoverable error path for them.
var fatalHandler = defaultFatalHandler

func defaultFatalHandler(msg string) {
	panic(msg)
}

// SetFatalHandler replaces the hook invoked on contract violations, letting
// the integrating application route them into its own fatal-error machinery.
// Passing nil restores the default handler, which panics with the violation
// message. The handler must not return; a handler that returns leaves the
// violated operation running on undefined state.
func SetFatalHandler(fn func(msg string)) {
	if fn == nil {
		fatalHandler = defaultFatalHandler
		return
	}
	fatalHandler = fn
}

func fail(format string, args ...any) {
	fatalHandler(fmt.Sprintf(format, args...))
}
