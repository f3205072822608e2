package project

// Describes one target CPU architecture.
type Arch struct {
	Name          string `yaml:"name"`           // Short tag, also the dotnet Platform property (e.g., "x64").
	Platform      string `yaml:"platform"`       // CMake generator platform passed via -A (e.g., "Win32").
	BuildFolder   string `yaml:"build-folder"`   // Folder under build/ holding the CMake tree (e.g., "Win64").
	RuntimeFolder string `yaml:"runtime-folder"` // .NET runtime identifier folder (e.g., "win-x64").
}

// Default Windows architectures, in build order.
func WindowsArchs() []Arch {
	return []Arch{
		{Name: "x86", Platform: "Win32", BuildFolder: "Win32", RuntimeFolder: "win-x86"},
		{Name: "x64", Platform: "x64", BuildFolder: "Win64", RuntimeFolder: "win-x64"},
	}
}
