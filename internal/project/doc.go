// Package project describes the repository being built.
//
// A [Project] bundles the static tables the pipeline works from: the target
// architectures, the locations of the .NET projects and test assets, the
// graphics backends in the test matrix, and the version-stamping settings.
// All of them are plain values resolved once at startup; nothing mutates
// them afterwards.
//
// Defaults match the DiligentCore repository. A YAML file may override any
// subset of fields:
//
//	paths:
//	  project: ./Graphics/GraphicsEngine.NET
//	tests:
//	  backends: [d3d12]
//
// [Layout] turns the tables into concrete filesystem paths under a root
// directory for a given configuration and architecture.
package project
