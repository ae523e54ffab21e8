// Package batch reads texts for non-interactive translation from a file.
package batch
