package render

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/htmldown/core/ast"
)

// frame records one ancestor element on the traversal stack. For list
// frames, listDepth holds the class-derived nesting depth used to indent
// list items.
type frame struct {
	tag       string
	listDepth int
}

func newFrame(el *ast.Element) frame {
	f := frame{tag: el.Tag}
	if ast.IsList(el.Tag) {
		f.listDepth = classDepth(el.Attributes["class"])
	}
	return f
}

// contextStack is the renderer's ancestor context. It is scoped to a single
// Render call and never shared.
type contextStack []frame

func (s *contextStack) push(f frame) {
	*s = append(*s, f)
}

func (s *contextStack) pop() {
	*s = (*s)[:len(*s)-1]
}

// nearestList scans from the top of the stack for the closest enclosing
// ul/ol frame.
func (s contextStack) nearestList() (frame, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if ast.IsList(s[i].tag) {
			return s[i], true
		}
	}
	return frame{}, false
}

// classDepth derives a list nesting depth from a class attribute. Externally
// generated markup (word-processor exports) encodes indentation as a numeric
// suffix on a class token, e.g. class="lst-kix_abc-2" means depth 2. The
// heuristic is intentionally permissive: the first class token whose last
// hyphen-delimited suffix is all digits wins, and anything else means
// depth 0.
func classDepth(class string) int {
	for _, token := range strings.Fields(class) {
		i := strings.LastIndexByte(token, '-')
		if i < 0 || i == len(token)-1 {
			continue
		}
		suffix := token[i+1:]
		if !allDigits(suffix) {
			continue
		}
		depth, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		return depth
	}
	return 0
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
