package response

import (
	"github.com/jinzhu/copier"
)

// copyInto copies same-named fields; a failure means the DTO drifted from its view.
func copyInto[T any](src any) *T {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		panic("response: " + err.Error())
	}
	return dst
}

func copyAll[T any, S any](src []S) []*T {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		out = append(out, copyInto[T](s))
	}
	return out
}
