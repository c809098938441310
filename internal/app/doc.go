// Package app wires application dependencies for the CLI.
//
// Load reads Config from the home directory's .env file and the SIGCORE_*
// environment; NewWire builds the logger, keystore and key service from it.
package app
