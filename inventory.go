package troop

// applyInventory applies physical pickups and returns to scout stock. Only
// GIRL_PICKUP adds and only GIRL_RETURN subtracts; the result is a plain sum
// and does not depend on the order of transfers. It returns the number of
// movements naming no known scout.
func applyInventory(s *scoutSet, transfers []Transfer) (unmatched int) {
	for _, t := range transfers {
		switch t.Category {
		case GirlPickup:
			scout := s.lookup(t.To, t.GirlID)
			if scout == nil {
				unmatched++
				continue
			}
			scout.Inventory.add(t.PhysicalVarieties)
		case GirlReturn:
			scout := s.lookup(t.From, t.GirlID)
			if scout == nil {
				unmatched++
				continue
			}
			scout.Inventory.sub(t.PhysicalVarieties)
		}
	}
	return unmatched
}
