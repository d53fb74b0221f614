package models

// StateName is the state every seeded district belongs to.
const StateName = "Maharashtra"

type District struct {
    Name  string  `json:"name"`
    Code  string  `json:"code"`
    Lat   float64 `json:"lat"`
    Lng   float64 `json:"lng"`
    State string  `json:"state,omitempty"`
}

// DistrictDirectory is the static seed list for the districts table and
// the hardcoded fallback for read paths when the database is unreachable.
// Order matters: /api/districts returns it as-is when falling back.
var DistrictDirectory = []District{
    {Name: "Pune", Code: "PUN", Lat: 18.5204, Lng: 73.8567, State: StateName},
    {Name: "Mumbai City", Code: "MUM", Lat: 18.9388, Lng: 72.8354, State: StateName},
    {Name: "Mumbai Suburban", Code: "MUS", Lat: 19.0760, Lng: 72.8777, State: StateName},
    {Name: "Thane", Code: "THA", Lat: 19.2183, Lng: 72.9781, State: StateName},
    {Name: "Nashik", Code: "NAS", Lat: 19.9975, Lng: 73.7898, State: StateName},
    {Name: "Nagpur", Code: "NAG", Lat: 21.1458, Lng: 79.0882, State: StateName},
    {Name: "Chhatrapati Sambhajinagar", Code: "AUR", Lat: 19.8762, Lng: 75.3433, State: StateName},
    {Name: "Solapur", Code: "SOL", Lat: 17.6599, Lng: 75.9064, State: StateName},
    {Name: "Kolhapur", Code: "KOL", Lat: 16.7050, Lng: 74.2433, State: StateName},
    {Name: "Satara", Code: "SAT", Lat: 17.6805, Lng: 74.0183, State: StateName},
    {Name: "Sangli", Code: "SAN", Lat: 16.8524, Lng: 74.5815, State: StateName},
    {Name: "Ahmednagar", Code: "AHM", Lat: 19.0948, Lng: 74.7480, State: StateName},
    {Name: "Latur", Code: "LAT", Lat: 18.4088, Lng: 76.5604, State: StateName},
    {Name: "Amravati", Code: "AMR", Lat: 20.9320, Lng: 77.7523, State: StateName},
    {Name: "Jalgaon", Code: "JAL", Lat: 21.0077, Lng: 75.5626, State: StateName},
}
