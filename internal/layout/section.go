// ABOUTME: Sectionize splits a line stream into blank-line separated sections
// ABOUTME: Lazy and forward-only; blank lines are dropped, never stored

package layout

import "iter"

// Sectionize yields the maximal runs of non-blank lines in order.
// Empty or all-blank input yields nothing.
func Sectionize(lines []string) iter.Seq[Section] {
	return func(yield func(Section) bool) {
		var group Section
		for _, line := range lines {
			if line != "" {
				group = append(group, line)
				continue
			}
			if len(group) == 0 {
				continue
			}
			if !yield(group) {
				return
			}
			group = nil
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}
