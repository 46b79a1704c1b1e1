// Package helper contains test doubles and fixtures shared by the tests of the library packages.
package helper
