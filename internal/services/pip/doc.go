// Package pip provisions Python packages through "python -m pip". The
// provisioning stage uses it to guarantee PyInstaller is present before the
// packager runs.
package pip
