package conf

import "time"

// Recognized settings keys
const (
	KeySSHKeyName = "SSH_KEY_NAME"
	KeyServerHost = "SERVER_HOST"
	KeyServerUser = "SERVER_USER"
	KeyServerPort = "SERVER_PORT"
	KeyServerDir  = "SERVER_DIR"
)

// settingsOrder fixes the line order of the settings file
var settingsOrder = []string{
	KeySSHKeyName,
	KeyServerHost,
	KeyServerUser,
	KeyServerPort,
	KeyServerDir,
}

// defaults apply to every recognized key that was never set
var defaults = map[string]string{
	KeySSHKeyName: "fileshare",
	KeyServerHost: "files.example.com",
	KeyServerUser: "fileshare",
	KeyServerPort: "22",
	KeyServerDir:  "/var/www/files",
}

const (
	// Timeout acts as the general connection Timeout default value
	Timeout = 10 * time.Second

	// SettingsFileName is the name of the settings file inside the config home
	SettingsFileName = "config"
)
