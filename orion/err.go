package orion

import "fmt"

// Handle panics if err is not nil. Game callbacks have no way to report an
// error, a failed initialization is fatal.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
