package version

import "runtime/debug"

// Version is set by the build process
var Version string

// Get returns Version, else the module version or VCS revision recorded in
// the build info.
func Get() string {
	if Version != "" {
		return Version
	}

	v := "<unknown>"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, kv := range info.Settings {
		if kv.Key == "vcs.revision" && kv.Value != "" {
			v = kv.Value
			if len(v) > 12 {
				v = v[:12]
			}
		}
	}
	return v
}
