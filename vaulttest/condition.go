package vaulttest

import (
	"crypto/rand"

	finvault "github.com/iov-one/finvault"
)

// NewCondition returns a new, unique condition. Data is random, so
// conditions from two calls never collide.
func NewCondition() finvault.Condition {
	data := make([]byte, 16)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return finvault.NewCondition("test", "mock", data)
}
