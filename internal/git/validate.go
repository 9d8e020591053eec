package git

import (
	"fmt"
	"strings"
)

// dangerousChars are blocked in branch/ref arguments even though git is
// never invoked through a shell.
const dangerousChars = "\x00\n;|&$`(){}"

// ValidateRef validates a branch name or ref to prevent command and
// argument injection before it is passed to the git subprocess.
func ValidateRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("ref cannot be empty")
	}
	if idx := strings.IndexAny(ref, dangerousChars); idx != -1 {
		return fmt.Errorf("invalid character %q in ref %q", ref[idx], ref)
	}
	// Prevent argument injection (e.g. "--exec=malicious")
	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("ref cannot start with '-': %q", ref)
	}
	return nil
}
