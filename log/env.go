package log

import "os"

// DebugEnv names the environment variable that enables debug output of the
// console factory. Its presence enables debug output, whatever its value.
//
// No other backend consults it.
const DebugEnv = "SCOPELOG_DEBUG"

// DebugEnabled reports whether [DebugEnv] is set. The console factory calls
// it for every debug message, so changes to the environment apply
// immediately.
func DebugEnabled() bool {
	_, ok := os.LookupEnv(DebugEnv)

	return ok
}
