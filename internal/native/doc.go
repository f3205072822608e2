// Package native builds the C++ library and stages its binaries for .NET.
//
// [Build] configures and builds the CMake install target for one
// architecture, then [Stage] replaces the staged binaries with a fresh copy
// of the installed ones. Staged files are renamed to their canonical name
// (the part before the first underscore, plus the extension), so the
// managed loader can reference "GraphicsEngineD3D12.dll" regardless of the
// "_64d" style suffix the build variant adds.
//
// Two source names may collapse to the same canonical name. The outcome is
// governed by a [CollisionPolicy]; files are processed in lexical order, so
// under [CollisionSkip] the lexically first file keeps the canonical name.
//
// [Reclaim] frees disk space after a build by deleting everything in the
// CMake binary tree except the test binaries and the install prefix.
package native
