// Package pyinstaller wraps the PyInstaller CLI. It assembles the fixed
// single-file, windowed bundling flags, streams tool output, and converts a
// non-zero exit into a typed result carrying the tool's diagnostic text
// verbatim, since only PyInstaller itself can explain a bundling failure
// precisely.
package pyinstaller
