package domain

import "strconv"

// Vessel is a vessel record from the backend's fleet registry.
// Vessels double as an entity kind: other records reference them by id.
type Vessel struct {
	VesselID  string `json:"vesselId"`
	Name      string `json:"name"`
	IMONumber string `json:"imoNumber"`
	Flag      string `json:"flag"`
	CapacityT int64  `json:"capacityT"` // deadweight tonnage
}

func (v Vessel) Field(name string) (string, bool) {
	switch name {
	case "vessel_id":
		return v.VesselID, true
	case "name":
		return v.Name, true
	case "imo_number":
		return v.IMONumber, true
	case "flag":
		return v.Flag, true
	case "capacity_t":
		return strconv.FormatInt(v.CapacityT, 10), true
	}
	return "", false
}

func (v Vessel) Ref(name string) (EntityKind, string, bool) {
	return "", "", false
}
