/*
Package errors implements custom error interfaces for the vault
application.

The idea is to reuse as many errors from this package as possible and
define custom package errors only when really necessary. Errors are
registered with a unique numeric code that is returned to the caller,
so two error instances must never share a code. Error messages are
meant for the client while the attached stack trace is meant for the
operator.

Use Wrap and Wrapf to add context to an error without changing its
code. Use Is to test for an error class regardless of how many times
it was wrapped.
*/
package errors
