package cart

// MergeItems unions a device-local item list with an account-level cloud item
// list, keyed by product ID. The cloud copy wins on every field except
// quantity, which takes the maximum of the two sides: a guest's in-progress
// additions are never lost and never double-counted.
//
// The union is total: there is no conflict state to report. A removal made on
// another device can be resurrected by a merge against a stale copy; that is
// a documented trade-off of the quantity-max rule, not a bug.
func MergeItems(local, cloud []LineItem) []LineItem {
	merged := make([]LineItem, 0, len(cloud)+len(local))
	index := make(map[string]int, len(cloud))

	for _, item := range cloud {
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	for _, item := range local {
		if at, ok := index[item.ProductID]; ok {
			if item.Quantity > merged[at].Quantity {
				merged[at].Quantity = clampQuantity(item.Quantity, merged[at].MaxQuantity)
			}
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	return merged
}

// MergeCarts merges two carts with MergeItems semantics. The cloud coupon
// wins when both sides carry one.
func MergeCarts(local, cloud Cart) Cart {
	out := Cart{
		Items:         MergeItems(local.Items, cloud.Items),
		AppliedCoupon: cloud.AppliedCoupon,
	}
	if out.AppliedCoupon == nil && local.AppliedCoupon != nil {
		coupon := *local.AppliedCoupon
		out.AppliedCoupon = &coupon
	}
	if cloud.UpdatedAt.After(local.UpdatedAt) {
		out.UpdatedAt = cloud.UpdatedAt
	} else {
		out.UpdatedAt = local.UpdatedAt
	}
	return out
}
