package requests

import "slices"

// floorSet holds unique floors in ascending order.
type floorSet struct {
	floors []int
}

func (fs *floorSet) add(floor int) bool {
	i, found := slices.BinarySearch(fs.floors, floor)
	if found {
		return false
	}
	fs.floors = slices.Insert(fs.floors, i, floor)
	return true
}

func (fs *floorSet) remove(floor int) bool {
	i, found := slices.BinarySearch(fs.floors, floor)
	if !found {
		return false
	}
	fs.floors = slices.Delete(fs.floors, i, i+1)
	return true
}

func (fs *floorSet) contains(floor int) bool {
	_, found := slices.BinarySearch(fs.floors, floor)
	return found
}

func (fs *floorSet) len() int {
	return len(fs.floors)
}

// ceiling returns the lowest floor >= floor.
func (fs *floorSet) ceiling(floor int) (int, bool) {
	i, _ := slices.BinarySearch(fs.floors, floor)
	if i == len(fs.floors) {
		return 0, false
	}
	return fs.floors[i], true
}

// higher returns the lowest floor > floor.
func (fs *floorSet) higher(floor int) (int, bool) {
	return fs.ceiling(floor + 1)
}

// floor returns the highest floor <= f.
func (fs *floorSet) floor(f int) (int, bool) {
	i, found := slices.BinarySearch(fs.floors, f)
	if found {
		return fs.floors[i], true
	}
	if i == 0 {
		return 0, false
	}
	return fs.floors[i-1], true
}

// lower returns the highest floor < f.
func (fs *floorSet) lower(f int) (int, bool) {
	return fs.floor(f - 1)
}

// takeBelow removes and returns every floor < f.
func (fs *floorSet) takeBelow(f int) []int {
	i, _ := slices.BinarySearch(fs.floors, f)
	taken := slices.Clone(fs.floors[:i])
	fs.floors = slices.Delete(fs.floors, 0, i)
	return taken
}

// takeFrom removes and returns every floor >= f.
func (fs *floorSet) takeFrom(f int) []int {
	i, _ := slices.BinarySearch(fs.floors, f)
	taken := slices.Clone(fs.floors[i:])
	fs.floors = fs.floors[:i]
	return taken
}

func (fs *floorSet) addAll(floors []int) {
	for _, f := range floors {
		fs.add(f)
	}
}

func (fs *floorSet) ascending() []int {
	return append([]int{}, fs.floors...)
}

func (fs *floorSet) descending() []int {
	out := fs.ascending()
	slices.Reverse(out)
	return out
}
