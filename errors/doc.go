/*
Package errors implements the coded errors used across the module.

The idea is to reuse as many root errors from this package as possible and
define custom package errors only when absolutely necessary. Extensions
register their own root errors with Register(code, description), see
x/aswap for an example.

Please create the error using ErrXyz.New("...") or errors.Wrap(err, "...") at
the point of creation to ensure we attach a stacktrace. If you wrap multiple
times, we only record the first wrap with the stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more context
	%s is just the error message
	%+v is the full stack trace
*/
package errors
