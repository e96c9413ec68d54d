package models

// DefaultVenues is the fixed catalog of bookable venues. Venue matching in
// the assistant scans this list in order, so more specific names should come
// before generic ones.
var DefaultVenues = []string{
	"101", "102", "103", "104",
	"201", "202", "203", "204",
	"301", "302", "303", "304",
	"STEM Room", "Music Room", "Activity Room", "English Room",
	"Library", "Cooking Studio", "G01 Esports Room", "Counselling Room",
	"G02", "G03", "Hall", "Playground", "Squash Court", "Climbing Wall",
}
