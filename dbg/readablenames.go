package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names, so that shapes
// without a name of their own (e.g. polygons read from stdin) can be told
// apart in output. Names are generated lazily and memoized for the life of the
// process. The memo is never pruned, so don't feed it an unbounded stream.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a readable name for obj, which must be a pointer (or nil). The
// same pointer always gets the same name.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	value := reflect.ValueOf(obj)
	if value.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("dbg.Name needs a pointer, got %T", obj))
	}
	if value.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Label returns name if it is set, and a readable generated name for obj
// otherwise.
func Label(name string, obj interface{}) string {
	if name != "" {
		return name
	}
	return Name(obj)
}
