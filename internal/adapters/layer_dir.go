package adapters

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

const (
	versionFileName  = "latest_version.txt"
	locationFileName = "download_url.txt"
	archiveFileName  = "layer.zip"
)

// LayerDirAdapter manages the working files inside a layer output
// directory. The version and location files are per-step bookkeeping
// and are removed once the layer is unpacked.
type LayerDirAdapter struct {
	Dir string
}

func NewLayerDirAdapter(dir string) LayerDirAdapter {
	return LayerDirAdapter{Dir: dir}
}

func (a LayerDirAdapter) WriteVersionFile(version int64) error {
	path, err := a.ensurePath(versionFileName)
	if err != nil {
		return err
	}
	return a.write(path, strconv.FormatInt(version, 10)+"\n")
}

func (a LayerDirAdapter) WriteLocationFile(url string) error {
	path, err := a.ensurePath(locationFileName)
	if err != nil {
		return err
	}
	return a.write(path, url+"\n")
}

func (a LayerDirAdapter) ArchivePath() string {
	return filepath.Join(a.Dir, archiveFileName)
}

// RemoveBookkeeping deletes the step files, best effort.
func (a LayerDirAdapter) RemoveBookkeeping() {
	for _, name := range []string{versionFileName, locationFileName} {
		if err := os.Remove(filepath.Join(a.Dir, name)); err != nil && !os.IsNotExist(err) {
			log.Debug().Str("file", name).Err(err).Msg("failed to remove bookkeeping file")
		}
	}
}

func (a LayerDirAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func (a LayerDirAdapter) write(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + filepath.Base(path)).
			WithCause(err)
	}
	return nil
}
