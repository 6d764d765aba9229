package catalog

import "time"

// ActiveWindow is how long a product stays active after its buildup date.
const ActiveWindow = 60 * 24 * time.Hour

// DeriveStatus returns the status an active product should carry at now. Products
// that are already inactive, or have no buildup date, keep their status.
func DeriveStatus(buildup time.Time, active bool, now time.Time) bool {
	if buildup.IsZero() || !active {
		return active
	}
	return !buildup.Before(now.Add(-ActiveWindow))
}
