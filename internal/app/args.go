// Where: internal/app/args.go
// What: Argument scanning for the generate pipeline.
// Why: The flag grammar is fixed; pair each flag with exactly one value token.
package app

import "fmt"

// InvocationArgs holds the three values a run needs. All fields are
// required and non-empty once parseArgs succeeds; the struct is never
// mutated afterwards.
type InvocationArgs struct {
	OutputPath    string
	ModuleName    string
	EntryTypeName string
}

// ArgumentError reports an invalid invocation: a missing or duplicated
// flag, a flag without a value, or a token the CLI does not recognize.
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string {
	return "invalid arguments: " + e.Reason
}

// requiredFlags lists the accepted flags in usage order.
var requiredFlags = []string{"-o", "-m", "-t"}

// parseArgs walks the argument vector (program name excluded) and pairs
// each of -o, -m, and -t with the token immediately following it. Flags
// may appear in any order but each exactly once; a repeated flag is
// rejected rather than overwritten. There is no "=" form and no combined
// short flags.
func parseArgs(args []string) (InvocationArgs, error) {
	var parsed InvocationArgs

	fields := map[string]*string{
		"-o": &parsed.OutputPath,
		"-m": &parsed.ModuleName,
		"-t": &parsed.EntryTypeName,
	}
	seen := make(map[string]bool, len(fields))

	for i := 0; i < len(args); i++ {
		token := args[i]
		field, ok := fields[token]
		if !ok {
			return InvocationArgs{}, &ArgumentError{Reason: fmt.Sprintf("unexpected argument %q", token)}
		}
		if seen[token] {
			return InvocationArgs{}, &ArgumentError{Reason: fmt.Sprintf("flag %s given more than once", token)}
		}
		if i+1 >= len(args) {
			return InvocationArgs{}, &ArgumentError{Reason: fmt.Sprintf("flag %s requires a value", token)}
		}
		value := args[i+1]
		if value == "" {
			return InvocationArgs{}, &ArgumentError{Reason: fmt.Sprintf("flag %s requires a non-empty value", token)}
		}
		seen[token] = true
		*field = value
		i++
	}

	for _, flag := range requiredFlags {
		if !seen[flag] {
			return InvocationArgs{}, &ArgumentError{Reason: "missing required flag " + flag}
		}
	}

	return parsed, nil
}
