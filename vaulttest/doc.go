/*
Package vaulttest provides mocks and helpers for testing handlers and
decorators without running a full application. None of the
implementations here are safe for production use.
*/
package vaulttest
