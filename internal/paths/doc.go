// Provides platform-appropriate locations for dnbuild's own files.
//
// User-level configuration follows XDG conventions on Linux and the native
// conventions on macOS and Windows (%LOCALAPPDATA% on Windows). The program
// name "dnbuild" is used as the subdirectory under each base path.
package paths
