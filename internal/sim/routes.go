package sim

// Waypoint is one geographic point of a polyline.
type Waypoint struct {
	Lat float64
	Lng float64
}

// Polyline is a named, ordered travel path of at least two waypoints.
type Polyline struct {
	Name   string
	Points []Waypoint
}

// Catalogue is the fixed set of intercity paths vehicles travel along.
// Simulated trucks follow these highways end to end and are then recycled
// onto another path.
var Catalogue = []Polyline{
	{
		Name: "İstanbul - Ankara",
		Points: []Waypoint{
			{41.015137, 28.979530}, // İstanbul
			{40.783432, 29.940682}, // İzmit
			{40.735638, 31.608727}, // Bolu
			{39.933365, 32.859741}, // Ankara
		},
	},
	{
		Name: "Ankara - İzmir",
		Points: []Waypoint{
			{39.933365, 32.859741}, // Ankara
			{38.756886, 30.538704}, // Afyonkarahisar
			{38.674351, 29.403973}, // Uşak
			{38.423733, 27.142826}, // İzmir
		},
	},
	{
		Name: "İstanbul - Antalya",
		Points: []Waypoint{
			{41.015137, 28.979530}, // İstanbul
			{40.195414, 29.060964}, // Bursa
			{39.424206, 29.985733}, // Kütahya
			{38.326442, 30.518038}, // Sandıklı
			{36.896891, 30.713323}, // Antalya
		},
	},
	{
		Name: "Ankara - Adana",
		Points: []Waypoint{
			{39.933365, 32.859741}, // Ankara
			{38.736510, 34.725399}, // Nevşehir
			{37.874641, 32.493156}, // Konya yolu ayrımı
			{37.000000, 35.321335}, // Adana
		},
	},
	{
		Name: "Samsun - Trabzon",
		Points: []Waypoint{
			{41.286667, 36.330000}, // Samsun
			{41.025513, 37.876835}, // Ordu
			{40.917532, 38.392654}, // Giresun
			{41.002697, 39.716763}, // Trabzon
		},
	},
}
