package magetasks

import (
	"os"
)

var (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/verdict"

	// CoverProfile is where coverage data is written.
	CoverProfile = "coverage.out"

	// ProjectRoot is the root directory of the project.
	ProjectRoot string
)

// Initialize sets up the magetasks package.
// Call this from the Magefile init() function.
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	return err
}
