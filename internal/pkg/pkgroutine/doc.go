// Package pkgroutine runs bounded groups of goroutines and joins their errors.
package pkgroutine
