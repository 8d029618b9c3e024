// Package perms provides centralized file and directory permission constants
// for the files gnuusage writes (usage documents and logs).
package perms

import "os"

const (
	// RegularFile permissions for usage documents and log files.
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for directories created to hold a new usage document.
	// Mode 0755: owner read/write/execute, group read/execute, others read/execute.
	RegularDir os.FileMode = 0o755
)
