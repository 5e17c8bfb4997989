package fileutil

import "os"

// OwnerReadWrite is the file permission mode for report output files
// containing potentially sensitive API inventory data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
