package config

const (
	defaultSourceFile     = "yydb.py"
	defaultExecutableName = "YYDB音频分析器"
	defaultWorkspaceDir   = "."
	defaultPythonBinary   = "python"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Build: Build{
			SourceFile:     defaultSourceFile,
			ExecutableName: defaultExecutableName,
			WorkspaceDir:   defaultWorkspaceDir,
		},
		Python: Python{
			Binary: defaultPythonBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
