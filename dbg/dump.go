package dbg

import "github.com/kr/pretty"

// Dump pretty prints values, including unexported struct fields, for use in
// debug output and test failure messages.
func Dump(values ...interface{}) string {
	return pretty.Sprint(values...)
}
