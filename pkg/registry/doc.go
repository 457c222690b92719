// Package registry maps action names to handlers so that menu files can
// refer to Go code by name.
package registry
