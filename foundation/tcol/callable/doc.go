// File: doc.go
// Title: Type-Erased Callable Package Documentation
// Description: Wraps Go functions of arbitrary signature behind one
//              token based call interface.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

/*
Package callable wraps typed Go functions so that a registry can store them
side by side and invoke them with string tokens.

A Func hides the concrete signature of the wrapped function. Its codecs are
resolved when it is built, so a function whose argument or result type has no
text conversion is rejected at construction and never at call time.

Generic constructors exist per arity:

	square := callable.Of1(func(n int) int { return n * n })
	out, ok := square.Call([]string{"7"}) // "49", true

	logIt := callable.Do1(func(msg string) { fmt.Println(msg) })
	out, ok = logIt.Call([]string{"hi"}) // "", true

Reflect accepts any function value and also understands trailing error
results:

	fn, err := callable.Reflect(func(a, b float64) (float64, error) { ... })

Invocation is atomic: every token is converted before the wrapped function
runs, so a conversion failure on any argument never causes side effects.
Call collapses every failure to false; Invoke reports the reason as an
*error.Error carrying CodeArity, CodeConversion or CodeExecution.
*/
package callable
