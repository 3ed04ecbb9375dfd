// Package config holds version/constants for the checker the way the
// teacher's internal/config/constants.go does: package-level var/const, no
// env or flag binding here.
package config

// Version is the current arischeck version. Set at build time via
// -ldflags, or left at this default for local builds.
var Version = "0.1.0"

const ProofFileExt = ".fitch"

// ProofFileExtensions are all recognized proof source file extensions.
var ProofFileExtensions = []string{".fitch", ".proof", ".aris"}

// TrimProofExt removes any recognized proof extension from a filename.
// Returns the original string if no extension matches.
func TrimProofExt(name string) string {
	for _, ext := range ProofFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasProofExt returns true if the path ends with any recognized proof
// extension.
func HasProofExt(path string) bool {
	for _, ext := range ProofFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates the program is running under a test harness rather
// than as an interactive CLI; set once at startup.
var IsTestMode = false

// Default sentinel justification name for an unjustified line, mirroring
// the rule catalog's EMPTY_RULE entry.
const EmptyRuleName = "EMPTY_RULE"
