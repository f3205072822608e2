package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/diligentgraphics/dnbuild/internal/paths"
	"gopkg.in/yaml.v3"
)

// Loads the project description for root.
//
// If explicit is set, that file must exist. Otherwise the project-local
// dnbuild.yaml and then the user configuration are tried; when neither
// exists the defaults are returned. Returns the project and the file it was
// read from ("" for defaults).
func Resolve(root, explicit string) (Project, string, error) {
	source := explicit
	if source == "" {
		source = paths.FirstExisting(paths.ProjectConfig(root), paths.UserConfig())
	}

	if source == "" {
		p := Default()
		return p, "", p.Validate()
	}

	p, err := LoadFile(source)
	if err != nil {
		return Project{}, "", err
	}
	return p, source, nil
}

// Reads a YAML project description, overlaying it on the defaults.
func LoadFile(path string) (Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	p, err := Parse(data)
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parses a YAML project description, overlaying it on the defaults.
//
// Fields absent from the document keep their default values. Lists present
// in the document replace the default list. Unknown keys are rejected.
func Parse(data []byte) (Project, error) {
	p := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Project{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if err := p.Validate(); err != nil {
		return Project{}, err
	}
	return p, nil
}
