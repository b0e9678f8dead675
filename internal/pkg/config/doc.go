// Package config provides settings structs for the library runtime.
//
// Settings are plain values with validation attached; they are resolved by
// the embedding application (flags, files, environment) and handed to the
// library at initialization time.
package config
