package clusters

import (
	"fmt"
	"sort"
	"strings"
)

// ReceiverSeparator joins receiver names inside a cluster identifier.
const ReceiverSeparator = "+"

// NewClusterID builds the canonical identifier of a receiver set. Receiver
// names are trimmed, de-duplicated and sorted, so the listing order of the
// receivers does not create distinct clusters. Names may not contain
// ReceiverSeparator.
func NewClusterID(receivers ...string) (string, error) {
	if len(receivers) == 0 {
		return "", fmt.Errorf("%w: receiver cluster has no receivers", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(receivers))
	names := make([]string, 0, len(receivers))
	for i, r := range receivers {
		r = strings.TrimSpace(r)
		if r == "" {
			return "", fmt.Errorf("%w: receiver %d has a blank name", ErrInvalidInput, i)
		}
		if strings.Contains(r, ReceiverSeparator) {
			return "", fmt.Errorf("%w: receiver %d name %q contains separator %q",
				ErrInvalidInput, i, r, ReceiverSeparator)
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		names = append(names, r)
	}
	sort.Strings(names)
	return strings.Join(names, ReceiverSeparator), nil
}

// Receivers splits a cluster identifier built by NewClusterID back into its
// receiver names.
func Receivers(clusterID string) []string {
	if clusterID == "" {
		return nil
	}
	return strings.Split(clusterID, ReceiverSeparator)
}
