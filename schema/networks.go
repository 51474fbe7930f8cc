package schema

import "github.com/transitdata/gtfs-dataset/ids"

// Network names a grouping of routes that fare leg rules can address
// collectively (networks.txt).
type Network struct {
	NetworkID   ids.NetworkId
	NetworkName string
}

// ValidateRow enforces networks.txt's one within-row rule: network_id can
// never be empty.
func (n *Network) ValidateRow() error {
	if n.NetworkID.IsEmpty() {
		return newMissingValue("network_id", "can never be empty", n.snapshot())
	}
	return nil
}

func (n *Network) snapshot() RecordSnapshot {
	return RecordSnapshot{Table: "networks", Fields: map[string]string{"network_id": n.NetworkID.String()}}
}
