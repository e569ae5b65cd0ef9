package placer

import "github.com/VallariAg/placer/types"

// mergeSlots merges two slot lists by hostname. Entries from lh always come
// first and win ties: an rh slot whose hostname already appears in lh is
// dropped, so existing daemon placements keep their network/name pinning.
func mergeSlots(lh, rh []types.HostSlot) []types.HostSlot {
	names := make(map[string]struct{}, len(lh))
	for _, s := range lh {
		names[s.Hostname] = struct{}{}
	}

	out := make([]types.HostSlot, 0, len(lh)+len(rh))
	out = append(out, lh...)
	for _, s := range rh {
		if _, ok := names[s.Hostname]; !ok {
			out = append(out, s)
		}
	}

	return out
}

// differenceSlots returns lh minus rh by hostname, preserving lh's order.
func differenceSlots(lh, rh []types.HostSlot) []types.HostSlot {
	names := make(map[string]struct{}, len(rh))
	for _, s := range rh {
		names[s.Hostname] = struct{}{}
	}

	out := make([]types.HostSlot, 0, len(lh))
	for _, s := range lh {
		if _, ok := names[s.Hostname]; !ok {
			out = append(out, s)
		}
	}

	return out
}
