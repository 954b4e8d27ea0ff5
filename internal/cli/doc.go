// Package cli implements the audiobar command-line interface.
//
// # Command Structure
//
//	audiobar demo      - Animate the signal bar in the terminal
//	audiobar render    - Print a single frame
//	audiobar init      - Create .audiobar.yaml
//	audiobar version   - Print version information
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command. The root PersistentPreRunE loads and validates the config once;
// commands read it from loadedConfig.
package cli
