package version

import "testing"

func TestString(t *testing.T) {
	oldV, oldSHA, oldTime := Version, GitSHA, BuildTime
	t.Cleanup(func() { Version, GitSHA, BuildTime = oldV, oldSHA, oldTime })

	Version, GitSHA, BuildTime = "1.2.3", "abc123", "2024-01-01"
	if got, want := String(), "1.2.3 (abc123, built 2024-01-01)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
