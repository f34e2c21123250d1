package util

import (
	"os"
)

func FileExist(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func DirExist(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Unique returns s without repeated elements, keeping the first occurrence of each.
func Unique[S ~[]E, E comparable](s S) S {
	if len(s) < 2 {
		return s
	}

	result := make(S, 0, len(s))
	seen := make(map[E]struct{}, len(s))
	for _, item := range s {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
