package internal

import "reflect"

// TypeOf returns the reflect.Type of T without requiring a value,
// including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeName renders T for diagnostics.
func TypeName[T any]() string {
	return TypeOf[T]().String()
}
