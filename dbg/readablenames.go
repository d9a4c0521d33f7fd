package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values (spans, pointers) into random
// readable names. It keeps every name for the life of the process but
// generates them lazily, so it costs nothing unless tracing is on. A name like
// "BraveOtter" is much easier to follow through a long trace than "(412, 977)".

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || isNilPointer(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

// Forget all names handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}

func isNilPointer(obj interface{}) bool {
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
