// Package clock provides a tiny time abstraction.
//
// Token timestamps and health uptime read the time through Clocker so tests
// can freeze it with NewFixed.
package clock
