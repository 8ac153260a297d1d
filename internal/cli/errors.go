package cli

import "fmt"

type usageError struct {
	arg    string
	reason string
}

func (e usageError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.arg, e.reason)
}

func errUsage(arg, reason string) error {
	return usageError{arg: arg, reason: reason}
}
