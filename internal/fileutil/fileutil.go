// Package fileutil holds shared filesystem permission constants.
package fileutil

import "os"

// GeneratedFile is the permission mode for scaffolded output files,
// readable by build tools and other users.
const GeneratedFile os.FileMode = 0o644

// GeneratedDir is the permission mode for directories created under the
// target directory.
const GeneratedDir os.FileMode = 0o755
