// Package testsupport provides fixtures shared by package tests: temporary
// configurations and small synthetic images written to disk.
package testsupport
