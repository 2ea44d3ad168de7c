package mdw

// countStreak returns the longest run of target anywhere in carry plus
// s, and the length of the run still open at the end of s. The carry
// lets runs split across fragment boundaries count as one run without
// ever concatenating fragments.
func countStreak(s string, target byte, carry int) (max, trailing int) {
	run := carry
	max = carry
	for i := 0; i < len(s); i++ {
		if s[i] != target {
			run = 0
			continue
		}
		run++
		if run > max {
			max = run
		}
	}
	return max, run
}

// streak aggregates countStreak over an element subtree. The max of a
// composite element is the max of its children, with the trailing run
// threaded across contiguous fragments. Scope boundaries that cannot
// extend a run (a link's brackets, a new list or quote line) reset the
// carry; a link address contributes an independent candidate, compared
// against the children's max rather than added to it.
func (e *Element) streak(target byte, carry int) (max, trailing int) {
	switch e.kind {
	case elemText:
		return countStreak(e.text, target, carry)
	case elemSpan:
		return streakContiguous(e.children, target, carry)
	case elemLink:
		max, _ = streakContiguous(e.children, target, 0)
		if addrMax, _ := countStreak(e.dest, target, 0); addrMax > max {
			max = addrMax
		}
		return max, 0
	case elemHeading, elemParagraph:
		return streakContiguous(e.children, target, 0)
	default:
		// list, quote: every item starts a fresh line
		for _, child := range e.children {
			if m, _ := child.streak(target, 0); m > max {
				max = m
			}
		}
		return max, 0
	}
}

func streakContiguous(children []*Element, target byte, carry int) (max, trailing int) {
	max = carry
	trailing = carry
	for _, child := range children {
		m, t := child.streak(target, trailing)
		if m > max {
			max = m
		}
		trailing = t
	}
	return max, trailing
}
