//go:build windows

package preflight

import (
	"os"
	"path/filepath"
)

// Windows has no faccessat equivalent worth the ACL dance; probing with a
// temp file answers the only question the cleaner and packager care about.
func accessReadWrite(path string) error {
	probe, err := os.CreateTemp(path, ".yydbuild-access-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(filepath.Clean(name))
	return nil
}
