package vfs

import "strings"

// Root is the home directory every virtual path hangs off.
const Root = "~"

// Resolve computes the path reached from current by following target, the
// way a shell resolves a cd argument. It never fails; callers check the
// result against the folder set or file table.
//
// Only a single ".." per target is understood, and "./name" is appended to
// current without a separator, so Resolve("~", "./foo") is "~foo". Folder
// membership is checked by exact string equality, so that quirk is kept as-is.
func Resolve(current, target string) string {
	switch {
	case target == "..":
		idx := strings.LastIndex(current, "/")
		if idx < 0 {
			// "~" has nothing to pop; "" is never a valid directory.
			return ""
		}
		return current[:idx]
	case strings.HasPrefix(target, Root):
		return target
	case strings.HasPrefix(target, "./"):
		return current + target[2:]
	case target == ".":
		return current
	default:
		return current + "/" + target
	}
}
