// Package desktop performs the side effects that reach outside the terminal:
// clipboard writes, the resume download and print snapshots.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
)

// ErrNoResume is returned by Download when no resume file is configured.
var ErrNoResume = errors.New("no resume file configured")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// Desktop executes effects against the local machine.
type Desktop struct {
	Clipboard   Clipboard
	DownloadDir string
	now         func() time.Time
}

// New returns a Desktop writing into downloadDir. An empty downloadDir falls
// back to ~/Downloads.
func New(cb Clipboard, downloadDir string) *Desktop {
	if downloadDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			downloadDir = filepath.Join(home, "Downloads")
		}
	}
	return &Desktop{Clipboard: cb, DownloadDir: downloadDir, now: time.Now}
}

// Copy writes text to the clipboard.
func (d *Desktop) Copy(text string) error {
	if d.Clipboard == nil {
		return errors.New("clipboard unavailable")
	}
	if err := d.Clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// Download copies source into the download directory as name and returns the
// destination path.
func (d *Desktop) Download(source, name string) (string, error) {
	if source == "" {
		return "", ErrNoResume
	}
	if name == "" {
		name = filepath.Base(source)
	}
	in, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", source, err)
	}
	defer in.Close()

	if err := os.MkdirAll(d.DownloadDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", d.DownloadDir, err)
	}
	dest := filepath.Join(d.DownloadDir, name)
	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("copying to %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", dest, err)
	}
	return dest, nil
}

// Print writes a plain text snapshot of the sheet into the download directory
// and returns its path.
func (d *Desktop) Print(snapshot string) (string, error) {
	if err := os.MkdirAll(d.DownloadDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", d.DownloadDir, err)
	}
	name := fmt.Sprintf("schematic-%s.txt", d.now().Format("20060102-150405"))
	dest := filepath.Join(d.DownloadDir, name)
	if err := os.WriteFile(dest, []byte(snapshot), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, nil
}
