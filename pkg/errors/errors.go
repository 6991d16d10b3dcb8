package errors

// Error message constants for the swift-imports-group application
const (
	// File processing errors
	ErrMsgFailedToReadFile    = "failed to read file"
	ErrMsgFailedToReadStdin   = "failed to read standard input"
	ErrMsgFailedToWriteFile   = "failed to write file"
	ErrMsgFailedToWriteOutput = "failed to write output"
	ErrMsgFailedToCheckPath   = "failed to check path"
	ErrMsgPathIsDirectory     = "path is a directory, only a single source file is supported"
	ErrMsgUnsupportedFile     = "unsupported file extension"

	// Configuration errors
	ErrMsgFailedToLoadConfig   = "failed to load configuration"
	ErrMsgFailedToRenderConfig = "failed to render configuration"

	// Info messages
	InfoMsgLocatedImports = "located import block"
	InfoMsgNoImports      = "no import block found"
	InfoMsgGrouped        = "grouped imports"
	InfoMsgUnchanged      = "imports already sorted"
	InfoMsgWroteFile      = "wrote file"
)
