// Package commands defines the sigcore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen    Create a key (random, from a hex seed, or from a new recovery phrase)
//   - recover   Restore a key from a recovery phrase
//   - list      List stored keys
//   - address   Print the address for a seed or raw public key
//   - sign      Sign a message with a stored key
//   - verify    Verify a signature or a signed bundle
//   - encode    Hex to base58
//   - decode    Base58 to hex
//   - export    Write a stored key to an unencrypted keypair file
//   - import    Store the key held in a keypair file
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (logger, keystore, key service) before any subcommand runs.
package commands
