package project

import (
	"path/filepath"
)

const (

	// Build-folder entries that disk reclaim never removes.
	TestsFolder   = "Tests"
	InstallFolder = "install"

	// Folder under the managed project output that receives staged binaries.
	nativeFolder = "native"

	// Folder under the test project output that acts as a local NuGet feed.
	localPackagesFolder = "LocalPackages"

	// Folder under the test project that holds restored packages.
	restoredPackagesFolder = "RestoredPackages"

	// Folder under the test project output that receives shared test assets.
	assetsFolder = "assets"
)

// Resolves the project tables into concrete paths for one configuration.
//
// All returned paths are joined onto Root, so they are absolute whenever
// Root is.
type Layout struct {
	Root    string        // Repository root.
	Config  Configuration // Build configuration.
	Project Project       // Static tables.
}

// Creates a new [Layout].
func NewLayout(root string, p Project, cfg Configuration) Layout {
	return Layout{Root: root, Config: cfg, Project: p.Clone()}
}

func (l Layout) join(elem ...string) string {
	return filepath.Join(append([]string{l.Root}, elem...)...)
}

// CMake binary tree for an architecture (build/<BuildFolder>).
func (l Layout) BuildDir(a Arch) string {
	return l.join("build", a.BuildFolder)
}

// CMake install prefix for an architecture.
func (l Layout) InstallDir(a Arch) string {
	return filepath.Join(l.BuildDir(a), InstallFolder)
}

// Installed native binaries for an architecture and the configuration.
func (l Layout) InstallBinDir(a Arch) string {
	return filepath.Join(l.InstallDir(a), "bin", l.Config.String())
}

// Folder the managed project loads native binaries from.
func (l Layout) StagedDir(a Arch) string {
	return filepath.Join(l.ProjectOutputDir(), nativeFolder, a.RuntimeFolder)
}

// Native GPU test executable for an architecture.
func (l Layout) NativeTestExe(a Arch) string {
	name := l.Project.Tests.NativeTest
	return filepath.Join(l.BuildDir(a), TestsFolder, name, l.Config.String(), name+".exe")
}

// Managed binding project source folder.
func (l Layout) ProjectDir() string {
	return l.join(l.Project.Paths.Project)
}

// Managed test project source folder.
func (l Layout) TestsDir() string {
	return l.join(l.Project.Paths.Tests)
}

// Generated files for the managed binding project.
func (l Layout) ProjectOutputDir() string {
	return l.join(l.Project.Paths.Output, l.Project.Paths.Project)
}

// Generated files for the managed test project.
func (l Layout) TestsOutputDir() string {
	return l.join(l.Project.Paths.Output, l.Project.Paths.Tests)
}

// Folder dotnet pack writes packages to.
func (l Layout) PackageDir() string {
	return filepath.Join(l.ProjectOutputDir(), "bin", l.Config.String())
}

// Local package feed consumed by the test project.
func (l Layout) LocalPackagesDir() string {
	return filepath.Join(l.TestsOutputDir(), localPackagesFolder)
}

// Package cache of the test project, wiped before every restore.
func (l Layout) RestoreCacheDir() string {
	return filepath.Join(l.TestsDir(), restoredPackagesFolder)
}

// Native GPU test working directory and asset source.
func (l Layout) TestAssetsDir() string {
	return l.join(l.Project.Paths.TestAssets)
}

// Asset folder of the managed test project.
func (l Layout) ManagedAssetsDir() string {
	return filepath.Join(l.TestsOutputDir(), assetsFolder)
}
