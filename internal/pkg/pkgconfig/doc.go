// Package pkgconfig reads application settings.
//
// Code depends on the Config interface; Viper is the file-backed
// implementation, with GOFAULT_* environment variables taking precedence over
// file values.
package pkgconfig
