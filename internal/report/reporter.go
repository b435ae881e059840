package report

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"yydbuild/internal/logging"
)

// Opener opens a directory in the platform file browser.
type Opener interface {
	Open(dir string) error
}

// Option configures the reporter.
type Option func(*Reporter)

// WithOpener injects a custom folder opener (primarily for tests).
func WithOpener(opener Opener) Option {
	return func(r *Reporter) {
		if opener != nil {
			r.opener = opener
		}
	}
}

// WithOutput redirects user-facing output.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.out = w
		}
	}
}

// WithInput overrides the acknowledgment input stream and forces the
// interactive pause on.
func WithInput(in io.Reader) Option {
	return func(r *Reporter) {
		if in != nil {
			r.in = in
			r.interactive = true
		}
	}
}

// WithInteractive overrides terminal detection for the acknowledgment pause.
func WithInteractive(interactive bool) Option {
	return func(r *Reporter) {
		r.interactive = interactive
	}
}

// Reporter gives the user an unambiguous final status. The tool is typically
// double-clicked rather than run from a shell the user is watching, so
// failures pause for acknowledgment before the window closes.
type Reporter struct {
	out         io.Writer
	in          io.Reader
	opener      Opener
	logger      *slog.Logger
	interactive bool
}

// New constructs a reporter writing to stdout and pausing on stdin when it
// is attached to a terminal.
func New(logger *slog.Logger, opts ...Option) *Reporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Reporter{
		out:         os.Stdout,
		in:          os.Stdin,
		opener:      platformOpener{},
		logger:      logger,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Success prints the absolute artifact path and opens the containing
// directory in the file browser. The open is cosmetic: a headless
// environment must not turn a finished build into a failure.
func (r *Reporter) Success(artifactPath string) {
	absolute, err := filepath.Abs(artifactPath)
	if err != nil {
		absolute = artifactPath
	}
	fmt.Fprintln(r.out, "Build succeeded.")
	fmt.Fprintf(r.out, "Artifact: %s\n", absolute)

	dir := filepath.Dir(absolute)
	if err := r.opener.Open(dir); err != nil {
		r.logger.Warn("could not open output folder", logging.String("dir", dir), logging.Error(err))
	}
}

// Failure prints a clearly marked error state, the tool's own diagnostic
// text when there is one, and pauses for acknowledgment so a double-click
// user can read the message before the window closes.
func (r *Reporter) Failure(err error, diagnostic string) {
	fmt.Fprintln(r.out, "BUILD FAILED")
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
	if trimmed := strings.TrimSpace(diagnostic); trimmed != "" {
		fmt.Fprintln(r.out, "Tool output:")
		fmt.Fprintln(r.out, trimmed)
	}
	r.waitForAck()
}

func (r *Reporter) waitForAck() {
	if !r.interactive {
		return
	}
	fmt.Fprint(r.out, "Press Enter to exit...")
	reader := bufio.NewReader(r.in)
	_, _ = reader.ReadString('\n')
}
