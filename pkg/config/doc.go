// Package config handles configuration management for artlink.
//
// Configuration is layered, each layer overriding the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/artlink/config.toml
//  3. the project file, .artlink.toml in the working directory, or the file
//     given with --config
//  4. ARTLINK_SECTION__KEY environment variables
//  5. command-line flags
package config
