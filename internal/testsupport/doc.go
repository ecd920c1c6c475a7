// Package testsupport provides fixtures shared by package tests: file trees
// with recognisable content, stub transcoder executables, and configs wired
// to those stubs.
package testsupport
