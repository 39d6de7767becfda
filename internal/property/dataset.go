package property

import "sort"

// Dataset is an immutable, in-memory collection of property listings.
// It is shared, read-only reference data: one instance serves every
// conversation and requires no locking.
type Dataset struct {
	properties []Property
	locations  []string
}

// NewDataset builds a dataset from a slice of listings. The slice is copied;
// callers may not mutate listings after construction.
func NewDataset(properties []Property) *Dataset {
	ds := &Dataset{properties: make([]Property, len(properties))}
	copy(ds.properties, properties)

	seen := make(map[string]struct{})
	for _, p := range ds.properties {
		if p.Location == "" {
			continue
		}
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		ds.locations = append(ds.locations, p.Location)
	}
	sort.Strings(ds.locations)
	return ds
}

// Len returns the number of listings.
func (d *Dataset) Len() int {
	return len(d.properties)
}

// All returns every listing in dataset order. Callers must treat the returned
// slice as read-only.
func (d *Dataset) All() []Property {
	return d.properties
}

// Locations returns the distinct location values in the dataset, sorted.
func (d *Dataset) Locations() []string {
	return d.locations
}

// MinPrice returns the lowest listing price. ok is false for an empty dataset.
func (d *Dataset) MinPrice() (price float64, ok bool) {
	if len(d.properties) == 0 {
		return 0, false
	}
	min := d.properties[0].Price
	for _, p := range d.properties[1:] {
		if p.Price < min {
			min = p.Price
		}
	}
	return min, true
}

// CountByType returns how many listings have the given type.
func (d *Dataset) CountByType(propertyType string) int {
	n := 0
	for _, p := range d.properties {
		if p.Type == propertyType {
			n++
		}
	}
	return n
}

// CountByBedrooms returns how many listings have exactly the given bedroom count.
func (d *Dataset) CountByBedrooms(bedrooms int) int {
	n := 0
	for _, p := range d.properties {
		if p.Bedrooms == bedrooms {
			n++
		}
	}
	return n
}

// HasLocation reports whether the dataset contains a listing at the location.
func (d *Dataset) HasLocation(location string) bool {
	for _, loc := range d.locations {
		if loc == location {
			return true
		}
	}
	return false
}
