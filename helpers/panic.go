// Package helpers holds small cross-cutting utilities: fail-fast constructor guards
// and a fixed clock for tests.
package helpers

import "reflect"

// StrPanic panics with panicMessage when s is empty, otherwise returns s. Used by
// constructors to validate required configuration strings (hosts, key prefixes) at
// startup instead of failing on first use.
//
// Called from adapters/grpcclient.New and adapters/myredis.NewCache.
func StrPanic(s string, panicMessage string) string {
	if s == "" {
		panic(panicMessage)
	}
	return s
}

// NilPanic panics with panicMessage when v is nil (including typed nil pointers,
// slices, maps, chans, funcs and interfaces, checked via reflect), otherwise returns v.
//
// Called from service and adapter constructors when validating required dependencies
// (transports, caches, loggers, clock funcs).
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil reports whether v is nil or a typed nil for kinds where a plain comparison
// is not enough.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
