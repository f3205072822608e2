// Parses flags, configures logging, and dispatches dnbuild commands.
//
// The build command is the default, so its flags can be given directly:
//
//	dnbuild -c Release --dotnet-publish
//	dnbuild build -c Debug --dotnet-tests --free-memory
//	dnbuild version
//
// Global flags:
//
//	-q, --quiet     Only report warnings and errors.
//	-v, --verbose   Echo every command line.
//	-d, --debug     Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is rebuilt to reflect the final verbosity before any step
// runs.
package cli
