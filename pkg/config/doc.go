// Package config loads typed configuration structs from environment
// variables, bootstrapping a local .env file when one exists.
//
// Struct fields are annotated with `env` tags understood by
// github.com/caarlos0/env; see the apiclient package's Config for a complete
// example.
package config
