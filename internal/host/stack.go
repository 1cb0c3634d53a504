package host

// backStackLimit bounds how many pages Back can return to.
const backStackLimit = 100

// pathStack is the back history. The oldest entry is dropped once the stack
// is full.
type pathStack []string

func (s *pathStack) Push(path string) {
	*s = append(*s, path)
	if over := len(*s) - backStackLimit; over > 0 {
		*s = (*s)[over:]
	}
}

func (s *pathStack) Pop() (string, bool) {
	n := len(*s)
	if n == 0 {
		return "", false
	}
	top := (*s)[n-1]
	*s = (*s)[:n-1]
	return top, true
}
