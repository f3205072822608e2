package version

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/diligentgraphics/dnbuild/internal/paths"
	"github.com/diligentgraphics/dnbuild/internal/project"
	"github.com/diligentgraphics/dnbuild/internal/runner"
)

// Controls version stamping.
type Options struct {
	Root       string             // Repository whose tags are queried.
	Dir        string             // Folder receiving the generated file.
	Local      bool               // Append the local-build suffix.
	Versioning project.Versioning // Tag pattern, suffix, file and property names.
}

// Queries the latest version tag and writes the version file.
//
// Returns the version written.
func Stamp(ctx context.Context, r runner.Runner, opts Options) (string, error) {
	v, err := Latest(ctx, r, opts.Root, opts.Versioning.TagPattern)
	if err != nil {
		return "", err
	}
	if opts.Local {
		v += opts.Versioning.LocalSuffix
	}

	path := filepath.Join(opts.Dir, opts.Versioning.FileName)
	if err := WriteProps(path, opts.Versioning.Property, v); err != nil {
		return "", err
	}

	slog.Info("stamped version", "version", v, "file", path)
	return v, nil
}

// Writes an MSBuild project file defining a single property.
//
// The parent folder is created if absent. The document has no XML
// declaration and is indented with tabs.
func WriteProps(path, property, value string) error {
	data, err := renderProps(property, value)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	if err := os.WriteFile(path, data, paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}

type propsProject struct {
	XMLName       xml.Name      `xml:"Project"`
	PropertyGroup propertyGroup `xml:"PropertyGroup"`
}

type propertyGroup struct {
	Properties []property
}

type property struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

func renderProps(name, value string) ([]byte, error) {
	doc := propsProject{
		PropertyGroup: propertyGroup{
			Properties: []property{{XMLName: xml.Name{Local: name}, Value: value}},
		},
	}

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
