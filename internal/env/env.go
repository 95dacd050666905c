// Env package describes settings common to the whole application
package env

import "time"

const (
	// The management platform expects ISO8601 timestamps.
	// RFC3339 is a stricter profile of ISO8601, so it is safe to use here.
	TimeFormat = time.RFC3339
	// Default value for agent initiated messages to the platform
	MessageDefaultID = "-"

	// Agent config directory
	ConfigDir = "/etc/dockwatch"
	// Script controller reads its command files from here
	ScriptDir = ConfigDir + "/script"

	// Locking agent to prevent several instances running
	LockFile = "/var/lock/dockwatch_agent.lock"
)
