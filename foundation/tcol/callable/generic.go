// File: generic.go
// Title: Per-Arity Callable Constructors
// Description: Generic constructors for functions with zero to four
//              arguments, with and without a result value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package callable

// The constructors below panic with an *error.Error carrying
// CodeUnsupportedType when an argument or result type has no text
// conversion, and with CodeInvalidInput when fn is nil.

// Of0 wraps a function without arguments returning one value
func Of0[R any](fn func() R) Func {
	signature := mustFunc(fn)
	res := mustResult[R]()

	return Func{arity: 0, signature: signature, invoke: func(toks []string) (string, error) {
		return res.text(fn())
	}}
}

// Do0 wraps a function without arguments or result
func Do0(fn func()) Func {
	signature := mustFunc(fn)

	return Func{arity: 0, signature: signature, invoke: func(toks []string) (string, error) {
		fn()
		return "", nil
	}}
}

// Of1 wraps a function taking 1 argument and returning one value
func Of1[A, R any](fn func(A) R) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	res := mustResult[R]()

	return Func{arity: 1, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		return res.text(fn(a))
	}}
}

// Do1 wraps a function taking 1 argument without a result
func Do1[A any](fn func(A)) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()

	return Func{arity: 1, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		fn(a)
		return "", nil
	}}
}

// Of2 wraps a function taking 2 arguments and returning one value
func Of2[A, B, R any](fn func(A, B) R) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	pb := mustParam[B]()
	res := mustResult[R]()

	return Func{arity: 2, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		b, err := pb.at(toks, 1)
		if err != nil {
			return "", err
		}
		return res.text(fn(a, b))
	}}
}

// Do2 wraps a function taking 2 arguments without a result
func Do2[A, B any](fn func(A, B)) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	pb := mustParam[B]()

	return Func{arity: 2, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		b, err := pb.at(toks, 1)
		if err != nil {
			return "", err
		}
		fn(a, b)
		return "", nil
	}}
}

// Of3 wraps a function taking 3 arguments and returning one value
func Of3[A, B, C, R any](fn func(A, B, C) R) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	pb := mustParam[B]()
	pc := mustParam[C]()
	res := mustResult[R]()

	return Func{arity: 3, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		b, err := pb.at(toks, 1)
		if err != nil {
			return "", err
		}
		c, err := pc.at(toks, 2)
		if err != nil {
			return "", err
		}
		return res.text(fn(a, b, c))
	}}
}

// Do3 wraps a function taking 3 arguments without a result
func Do3[A, B, C any](fn func(A, B, C)) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	pb := mustParam[B]()
	pc := mustParam[C]()

	return Func{arity: 3, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		b, err := pb.at(toks, 1)
		if err != nil {
			return "", err
		}
		c, err := pc.at(toks, 2)
		if err != nil {
			return "", err
		}
		fn(a, b, c)
		return "", nil
	}}
}

// Of4 wraps a function taking 4 arguments and returning one value
func Of4[A, B, C, D, R any](fn func(A, B, C, D) R) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	pb := mustParam[B]()
	pc := mustParam[C]()
	pd := mustParam[D]()
	res := mustResult[R]()

	return Func{arity: 4, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		b, err := pb.at(toks, 1)
		if err != nil {
			return "", err
		}
		c, err := pc.at(toks, 2)
		if err != nil {
			return "", err
		}
		d, err := pd.at(toks, 3)
		if err != nil {
			return "", err
		}
		return res.text(fn(a, b, c, d))
	}}
}

// Do4 wraps a function taking 4 arguments without a result
func Do4[A, B, C, D any](fn func(A, B, C, D)) Func {
	signature := mustFunc(fn)
	pa := mustParam[A]()
	pb := mustParam[B]()
	pc := mustParam[C]()
	pd := mustParam[D]()

	return Func{arity: 4, signature: signature, invoke: func(toks []string) (string, error) {
		a, err := pa.at(toks, 0)
		if err != nil {
			return "", err
		}
		b, err := pb.at(toks, 1)
		if err != nil {
			return "", err
		}
		c, err := pc.at(toks, 2)
		if err != nil {
			return "", err
		}
		d, err := pd.at(toks, 3)
		if err != nil {
			return "", err
		}
		fn(a, b, c, d)
		return "", nil
	}}
}
