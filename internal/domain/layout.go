package domain

// Region names the screen area a player's panel occupies.
type Region string

const (
	RegionTopHalf      Region = "top_half"
	RegionBottomHalf   Region = "bottom_half"
	RegionTopLeft      Region = "top_left_quarter"
	RegionTopRight     Region = "top_right_quarter"
	RegionBottomLeft   Region = "bottom_left_quarter"
	RegionBottomRight  Region = "bottom_right_quarter"
	RegionBottomCenter Region = "bottom_center"
	// RegionCentered is used when no seating geometry exists for the input.
	RegionCentered Region = "centered"
)

// Rect is an area in screen fractions: (0,0) is the top-left corner and
// (1,1) the bottom-right.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Overlaps reports whether r and o share any interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

var regionBounds = map[Region]Rect{
	RegionTopHalf:      {X: 0, Y: 0, Width: 1, Height: 0.5},
	RegionBottomHalf:   {X: 0, Y: 0.5, Width: 1, Height: 0.5},
	RegionTopLeft:      {X: 0, Y: 0, Width: 0.5, Height: 0.5},
	RegionTopRight:     {X: 0.5, Y: 0, Width: 0.5, Height: 0.5},
	RegionBottomLeft:   {X: 0, Y: 0.5, Width: 0.5, Height: 0.5},
	RegionBottomRight:  {X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5},
	RegionBottomCenter: {X: 0, Y: 0.5, Width: 1, Height: 0.5},
	RegionCentered:     {X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5},
}

// Bounds returns the screen area of the region. Unknown regions map to the
// centered area.
func (r Region) Bounds() Rect {
	if b, ok := regionBounds[r]; ok {
		return b
	}
	return regionBounds[RegionCentered]
}

// Placement is where a player's panel goes and how it is turned so that its
// top edge faces that player's seat.
type Placement struct {
	Region          Region
	RotationDegrees int
}

// FallbackPlacement is returned for inputs with no seating geometry.
var FallbackPlacement = Placement{Region: RegionCentered, RotationDegrees: 0}

// seatingLayouts maps player count to placements in seat order.
var seatingLayouts = map[int][]Placement{
	2: {
		{Region: RegionTopHalf, RotationDegrees: 180},
		{Region: RegionBottomHalf, RotationDegrees: 0},
	},
	3: {
		{Region: RegionTopLeft, RotationDegrees: 90},
		{Region: RegionTopRight, RotationDegrees: 270},
		{Region: RegionBottomCenter, RotationDegrees: 0},
	},
	4: {
		{Region: RegionTopLeft, RotationDegrees: 90},
		{Region: RegionTopRight, RotationDegrees: 270},
		{Region: RegionBottomLeft, RotationDegrees: 90},
		{Region: RegionBottomRight, RotationDegrees: 270},
	},
}

// Resolve returns the placement for the player at index when playerCount
// players share the screen. It is a pure lookup and safe for concurrent use.
func Resolve(playerCount, index int) Placement {
	seats, ok := seatingLayouts[playerCount]
	if !ok || index < 0 || index >= len(seats) {
		return FallbackPlacement
	}
	return seats[index]
}

// Layout returns the placements for every seat at playerCount, or nil when
// the count has no seating geometry.
func Layout(playerCount int) []Placement {
	seats, ok := seatingLayouts[playerCount]
	if !ok {
		return nil
	}
	out := make([]Placement, len(seats))
	copy(out, seats)
	return out
}
