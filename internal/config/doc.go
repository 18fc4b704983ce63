// Package config provides configuration loading, merging, and validation
// for the dcctl command.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (DRAGONCHAIN_ prefix)
//  3. JSON config file
//
// Connection secrets are not part of it: chain ids, endpoints and keys not
// given on the command line are resolved by the credentials package.
//
// The main entry point is [Load].
package config
