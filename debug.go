package sqlq

import (
	"fmt"
	"strings"

	"github.com/qjebbs/go-sqlf/v4/util"
)

type debugger struct {
	debug bool // debug mode
	name  string
}

// Debug enables debug mode which prints the interpolated query to stdout.
func (b *debugger) Debug(name ...string) {
	b.debug = true
	if len(name) == 0 {
		b.name = "sqlq"
		return
	}
	b.name = strings.Replace(strings.Join(name, "_"), " ", "_", -1)
}

// printIfDebug prints the debug query to stdout.
func (b *debugger) printIfDebug(query string, args []any) {
	if !b.debug {
		return
	}
	prefix := b.name
	if prefix == "" {
		prefix = "sqlq"
	}
	interpolated, ok := util.Interpolate(query, args)
	if !ok {
		fmt.Printf("[%s] interpolating failed\n", prefix)
		fmt.Printf("[%s] %s %v\n", prefix, query, args)
		return
	}
	fmt.Printf("[%s] %s\n", prefix, interpolated)
}
