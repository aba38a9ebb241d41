package adapters

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"platform-tools/internal/ports"
	"platform-tools/internal/shared"
)

const defaultArchiveTimeout = 5 * time.Minute

// ArchiveHTTPAdapter downloads layer archives from their time-limited
// locations and unpacks them.
type ArchiveHTTPAdapter struct {
	Timeout time.Duration
}

func NewArchiveHTTPAdapter() ArchiveHTTPAdapter {
	return ArchiveHTTPAdapter{Timeout: defaultArchiveTimeout}
}

// Fetch streams the archive at url into destPath.
func (a ArchiveHTTPAdapter) Fetch(ctx context.Context, url string, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download request").
			WithCause(err)
	}
	client := &http.Client{Timeout: a.timeout()}
	resp, err := client.Do(req)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("layer download failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("layer download failed").
			WithCause(shared.HTTPStatusError(resp.StatusCode, url))
	}
	dest, err := os.Create(destPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create archive file").
			WithCause(err)
	}
	defer dest.Close()
	written, err := io.Copy(dest, resp.Body)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write archive file").
			WithCause(err)
	}
	log.Debug().Str("dest", destPath).Int64("bytes", written).Msg("layer archive downloaded")
	return nil
}

// Unpack extracts a zip archive into destDir, refusing entries that
// would land outside it.
func (a ArchiveHTTPAdapter) Unpack(archivePath string, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open layer archive").
			WithCause(err)
	}
	defer reader.Close()
	for _, entry := range reader.File {
		if err := extractZipEntry(entry, destDir); err != nil {
			return err
		}
	}
	return nil
}

func (a ArchiveHTTPAdapter) timeout() time.Duration {
	if a.Timeout <= 0 {
		return defaultArchiveTimeout
	}
	return a.Timeout
}

func extractZipEntry(entry *zip.File, destDir string) error {
	name := filepath.FromSlash(entry.Name)
	if !filepath.IsLocal(name) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("archive entry escapes destination: %s", entry.Name))
	}
	target := filepath.Join(destDir, name)
	if entry.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create archive directory").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create archive directory").
			WithCause(err)
	}
	src, err := entry.Open()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read archive entry").
			WithCause(err)
	}
	defer src.Close()
	dest, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode().Perm())
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create extracted file").
			WithCause(err)
	}
	defer dest.Close()
	if _, err := io.Copy(dest, src); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to extract archive entry").
			WithCause(err)
	}
	return nil
}

var _ ports.ArchiveFetcherPort = ArchiveHTTPAdapter{}
