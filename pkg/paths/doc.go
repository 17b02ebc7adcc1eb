// Package paths resolves the filesystem locations stop-nagging reads from.
//
// It follows the XDG Base Directory specification through adrg/xdg:
//
//   - Config: $XDG_CONFIG_HOME/stop-nagging (settings file)
//
// # Environment Variables
//
//   - STOP_NAGGING_CONFIG_DIR: override the config directory
//
// The log file location is owned by the logging package.
package paths
