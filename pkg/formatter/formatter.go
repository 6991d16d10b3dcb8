package formatter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/siyuan-infoblox/swift-imports-group/pkg/buffer"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/logging"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/sorter"
	"github.com/siyuan-infoblox/swift-imports-group/pkg/utils"
)

type FormatterConfig struct {
	FilePath   string         // path to the source file, "-" for standard input
	Extensions []string       // accepted source file extensions
	InPlace    bool           // whether to modify the file in place
	List       bool           // print the path of files whose imports would change
	Diff       bool           // print a diff instead of the rewritten source
	Color      bool           // colorize the diff
	Sorter     *sorter.Sorter // import sorter, defaults to sorter.New(sorter.Config{})
	Fs         afero.Fs       // filesystem, defaults to the OS filesystem
	In         io.Reader      // standard input, defaults to os.Stdin
	Out        io.Writer      // output, defaults to os.Stdout
	Logger     *slog.Logger   // logger, defaults to discarding everything
}

// Formatter is the editor host around the import sorter: it reads a file
// into a line buffer, applies the sorted import block and writes the result.
type Formatter struct {
	config FormatterConfig
}

// New creates a new Formatter, filling unset fields of config with defaults
func New(config FormatterConfig) *Formatter {
	if config.Sorter == nil {
		config.Sorter = sorter.New(sorter.Config{})
	}
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}
	if config.In == nil {
		config.In = os.Stdin
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = logging.Discard()
	}
	return &Formatter{config: config}
}

func (f *Formatter) getFilePath() string {
	return f.config.FilePath
}

func (f *Formatter) getInPlace() bool {
	return f.config.InPlace
}

func (f *Formatter) logger() *slog.Logger {
	return f.config.Logger.With("path", f.getFilePath())
}

// Format sorts the import block of src and reports whether anything changed
func (f *Formatter) Format(src []byte) ([]byte, bool) {
	log := f.logger()
	buf := buffer.Parse(src)

	edit, ok := f.config.Sorter.Plan(buf.Lines())
	if !ok {
		log.Debug(errors.InfoMsgNoImports, "lines", buf.Len())
		return src, false
	}
	log.Debug(errors.InfoMsgLocatedImports, "start", edit.Range.Start, "length", edit.Range.Length)

	buf.Replace(edit.Range.Start, edit.Range.Length, edit.Lines)
	out := buf.Bytes()
	changed := !bytes.Equal(out, src)
	log.Debug(errors.InfoMsgGrouped, "lines", len(edit.Lines), "changed", changed)
	return out, changed
}

// ProcessFile processes a single source file
func (f *Formatter) ProcessFile() error {
	path := f.getFilePath()
	if !utils.IsSourceFile(path, f.config.Extensions) {
		return fmt.Errorf("%s: %s", errors.ErrMsgUnsupportedFile, path)
	}

	info, err := f.config.Fs.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	src, err := afero.ReadFile(f.config.Fs, path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}

	out, changed := f.Format(src)
	if err := f.report(path, src, out, changed); err != nil {
		return err
	}

	if !f.getInPlace() {
		return nil
	}
	if !changed {
		f.logger().Debug(errors.InfoMsgUnchanged)
		return nil
	}
	if err := afero.WriteFile(f.config.Fs, path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
	}
	f.logger().Info(errors.InfoMsgWroteFile, "bytes", len(out))
	return nil
}

// ProcessStdin reads source from standard input and writes to the output
func (f *Formatter) ProcessStdin() error {
	src, err := io.ReadAll(f.config.In)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadStdin, err)
	}

	out, changed := f.Format(src)
	return f.report("<standard input>", src, out, changed)
}

// report prints the outcome for path according to the output mode. In place
// mode without list or diff prints nothing.
func (f *Formatter) report(path string, src, out []byte, changed bool) error {
	w := f.config.Out
	var err error

	switch {
	case f.config.List:
		if changed {
			_, err = fmt.Fprintln(w, path)
		}
	case f.config.Diff:
		if changed {
			err = writeDiff(w, path, src, out, f.config.Color)
		}
	case f.getInPlace() && !utils.IsStdin(f.getFilePath()):
	default:
		_, err = w.Write(out)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteOutput, err)
	}
	return nil
}

// ProcessPath processes a file path, or standard input when path is "-"
func (f *Formatter) ProcessPath(path string) error {
	f.config.FilePath = path
	if utils.IsStdin(path) {
		return f.ProcessStdin()
	}

	isDir, err := utils.IsDirectory(f.config.Fs, path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}
	if isDir {
		return fmt.Errorf("%s: %s", errors.ErrMsgPathIsDirectory, path)
	}

	return f.ProcessFile()
}
