// Package dotnet builds, packs, and tests the managed binding.
//
// [Pack] stamps the binding project with the release version, builds it
// for every architecture, and produces a NuGet package. [Test] consumes
// that package from a local feed: it stamps and restores the test project
// from scratch, then for every graphics backend runs the native GPU tests
// that generate reference assets, copies those assets into the managed
// test project, and runs the managed tests against them.
package dotnet
