// Package config defines the application configuration structures and the
// loading logic that populates them from environment variables and files.
package config
