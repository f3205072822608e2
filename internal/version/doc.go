// Package version stamps .NET builds with the repository's release version.
//
// The version comes from the highest "v"-prefixed git tag, without the
// prefix. Local builds get a suffix ("-local") so their packages never
// shadow a published one. The result is written as a small MSBuild file
// that the .NET projects import:
//
//	<Project>
//		<PropertyGroup>
//			<PackageGitVersion>2.5.6-local</PackageGitVersion>
//		</PropertyGroup>
//	</Project>
package version
