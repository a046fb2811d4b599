// Package files groups the filesystem-facing packages: the provider
// abstraction (filesystem) and the directory scanner (scanner).
package files
