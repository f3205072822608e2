package project

import (
	"fmt"
	"maps"
	"slices"
)

// Repository-relative locations of the .NET projects and test assets.
type Paths struct {
	Project    string `yaml:"project"`     // Managed binding project.
	Tests      string `yaml:"tests"`       // Managed test project.
	Output     string `yaml:"output"`      // Build output root for generated files.
	TestAssets string `yaml:"test-assets"` // Working directory of the native GPU tests.
}

// Graphics backend test matrix.
type Tests struct {
	Backends    []string `yaml:"backends"`     // Graphics backends, run in order.
	NativeTests []string `yaml:"native-tests"` // GoogleTest filters, one native run each.
	AssetMarker string   `yaml:"asset-marker"` // Substring selecting assets shared with the managed tests.
	BackendEnv  string   `yaml:"backend-env"`  // Variable carrying the backend into the managed tests.
	NativeTest  string   `yaml:"native-test"`  // Native test executable name, without directory.
}

// Settings for the generated version metadata.
type Versioning struct {
	TagPattern  string `yaml:"tag-pattern"`  // git tag --list pattern (e.g., "v*").
	LocalSuffix string `yaml:"local-suffix"` // Appended for local builds.
	FileName    string `yaml:"file-name"`    // Generated MSBuild file name.
	Property    string `yaml:"property"`     // MSBuild property holding the version.
}

// Static description of the repository being built.
type Project struct {
	Archs      []Arch     `yaml:"archs"`
	Paths      Paths      `yaml:"paths"`
	Tests      Tests      `yaml:"tests"`
	Versioning Versioning `yaml:"versioning"`
}

// Returns the project description for the DiligentCore repository.
func Default() Project {
	return Project{
		Archs: WindowsArchs(),
		Paths: Paths{
			Project:    "./Graphics/GraphicsEngine.NET",
			Tests:      "./Tests/DiligentCoreTest.NET",
			Output:     "./build/.NET",
			TestAssets: "./Tests/DiligentCoreAPITest/assets",
		},
		Tests: Tests{
			Backends: []string{"d3d11", "d3d12"},
			NativeTests: []string{
				"GenerateImagesDotNetTest.GenerateCubeTexture",
				"GenerateArhiveDotNetTest.GenerateCubeArchive",
			},
			AssetMarker: "DotNet",
			BackendEnv:  "DILIGENT_GAPI",
			NativeTest:  "DiligentCoreAPITest",
		},
		Versioning: Versioning{
			TagPattern:  "v*",
			LocalSuffix: "-local",
			FileName:    "Version.props",
			Property:    "PackageGitVersion",
		},
	}
}

// Returns a deep copy, so callers can hand out the project without sharing
// slices.
func (p Project) Clone() Project {
	p.Archs = slices.Clone(p.Archs)
	p.Tests.Backends = slices.Clone(p.Tests.Backends)
	p.Tests.NativeTests = slices.Clone(p.Tests.NativeTests)
	return p
}

// Checks that the tables are complete and internally consistent.
func (p Project) Validate() error {
	if len(p.Archs) == 0 {
		return fmt.Errorf("%w: no architectures", ErrConfig)
	}

	seen := make(map[string]bool, len(p.Archs))
	for i, a := range p.Archs {
		if a.Name == "" || a.Platform == "" || a.BuildFolder == "" || a.RuntimeFolder == "" {
			return fmt.Errorf("%w: architecture %d is incomplete", ErrConfig, i+1)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: duplicate architecture %q", ErrConfig, a.Name)
		}
		seen[a.Name] = true
	}

	required := map[string]string{
		"paths.project":          p.Paths.Project,
		"paths.tests":            p.Paths.Tests,
		"paths.output":           p.Paths.Output,
		"paths.test-assets":      p.Paths.TestAssets,
		"tests.asset-marker":     p.Tests.AssetMarker,
		"tests.backend-env":      p.Tests.BackendEnv,
		"tests.native-test":      p.Tests.NativeTest,
		"versioning.tag-pattern": p.Versioning.TagPattern,
		"versioning.file-name":   p.Versioning.FileName,
		"versioning.property":    p.Versioning.Property,
	}
	for _, key := range slices.Sorted(maps.Keys(required)) {
		if required[key] == "" {
			return fmt.Errorf("%w: %s is empty", ErrConfig, key)
		}
	}

	if len(p.Tests.Backends) == 0 {
		return fmt.Errorf("%w: no graphics backends", ErrConfig)
	}

	return nil
}
