// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride replaces the platform config directory when set. Tests use
// it because HOME and XDG_CONFIG_HOME are not honored the same way everywhere.
var configDirOverride string

// SetConfigDirOverride makes ConfigDir return dir. Pass "" or call Reset to
// go back to the platform directory.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset drops any SetConfigDirOverride.
func Reset() {
	SetConfigDirOverride("")
}
