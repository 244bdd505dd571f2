// Package config provides user preference management for the troubleshooter.
//
// Preferences live in a YAML file at the platform's configuration location:
//   - Linux: $XDG_CONFIG_HOME/troubleshooter/config.yaml or $HOME/.config/troubleshooter/config.yaml
//   - macOS: $HOME/.config/troubleshooter/config.yaml
//   - Windows: %LOCALAPPDATA%\troubleshooter\config.yaml
//
// TROUBLESHOOTER_CONFIG_DIR overrides the directory.
//
// The file only holds how the program looks and logs. The wizard's device,
// operating system, and problem choices are session state and are never saved.
//
// # Example File
//
//	version: 1
//	preferences:
//	  alt_screen: true
//	  show_progress: true
//	  output_format: detailed
//	  log_level: debug
//	  log_file: /tmp/troubleshooter.log
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.Preferences.AltScreen {
//	    opts = append(opts, tea.WithAltScreen())
//	}
//
// # Thread Safety
//
// Load uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex and writes are atomic.
package config
