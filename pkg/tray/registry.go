package tray

// menuHandles flattens a menu into handle→identifier pairs, merging
// submenu results into the same mapping. Separators and the submenu
// nodes themselves produce no entry. Traversal follows declared
// order; a later duplicate handle overwrites an earlier one.
func menuHandles(ids map[uint64]string, m *Menu) {
	if m == nil {
		return
	}
	for _, e := range m.Items {
		switch entry := e.(type) {
		case Item:
			ids[entry.Handle()] = entry.ID
		case Submenu:
			menuHandles(ids, entry.Inner)
		}
	}
}

// duplicateIDs reports identifiers carried by more than one item in
// the menu, in first-seen order.
func duplicateIDs(m *Menu) []string {
	seen := map[string]int{}
	var dups []string
	countIDs(seen, m)
	for _, e := range ordered(m) {
		if seen[e] > 1 {
			dups = append(dups, e)
			seen[e] = 0
		}
	}
	return dups
}

func countIDs(seen map[string]int, m *Menu) {
	if m == nil {
		return
	}
	for _, e := range m.Items {
		switch entry := e.(type) {
		case Item:
			seen[entry.ID]++
		case Submenu:
			countIDs(seen, entry.Inner)
		}
	}
}

func ordered(m *Menu) []string {
	if m == nil {
		return nil
	}
	var ids []string
	for _, e := range m.Items {
		switch entry := e.(type) {
		case Item:
			ids = append(ids, entry.ID)
		case Submenu:
			ids = append(ids, ordered(entry.Inner)...)
		}
	}
	return ids
}
