// Package commands defines the cardform CLI.
//
// Commands
//
//   - valid-until   Print the valid-until text for an issue date
//   - preview       Print the preview fragment for an image file
//   - serve         Run the HTTP endpoints, metrics and OpenAPI document
//   - interactive   Prompt for an issue date and print the result
//
// The root command loads the configuration and builds the logger before any
// subcommand runs.
package commands
