package services

import profileModels "go-westeros/internal/profiles/models"

// rosterEntry is one named lord of the fixed seed roster.
type rosterEntry struct {
	Pseudo   string
	House    string
	Faction  string
	Gold     int64
	Soldiers int64
	X        int
	Y        int
}

// loreRoster is the fixed set of famous lords seeded into a realm, laid
// out across the map from the Wall down to Dorne.
var loreRoster = []rosterEntry{
	{Pseudo: "Eddard Stark", House: "stark", Faction: "noble", Gold: 1200, Soldiers: 5000, X: 250, Y: 300},
	{Pseudo: "Tywin Lannister", House: "lannister", Faction: "noble", Gold: 8000, Soldiers: 8000, X: 150, Y: 900},
	{Pseudo: "Robert Baratheon", House: "baratheon", Faction: "noble", Gold: 2000, Soldiers: 6000, X: 400, Y: 1100},
	{Pseudo: "Daenerys Targaryen", House: "targaryen", Faction: "noble", Gold: 500, Soldiers: 3000, X: 550, Y: 1400},
	{Pseudo: "Jeor Mormont", House: "nightwatch", Faction: "nightwatch", Gold: 1000, Soldiers: 800, X: 300, Y: 200},
	{Pseudo: "Night King", House: "whitewalker", Faction: "whitewalker", Gold: 0, Soldiers: 10000, X: 300, Y: 50},
	{Pseudo: "Olenna Tyrell", House: "tyrell", Faction: "noble", Gold: 6000, Soldiers: 7000, X: 200, Y: 1200},
	{Pseudo: "Balon Greyjoy", House: "greyjoy", Faction: "noble", Gold: 1500, Soldiers: 4000, X: 50, Y: 800},
	{Pseudo: "Doran Martell", House: "martell", Faction: "noble", Gold: 3000, Soldiers: 4500, X: 300, Y: 1450},
	{Pseudo: "Jon Arryn", House: "arryn", Faction: "noble", Gold: 2500, Soldiers: 3500, X: 500, Y: 800},
	{Pseudo: "Edmure Tully", House: "tully", Faction: "noble", Gold: 1800, Soldiers: 3000, X: 300, Y: 750},
}

// toProfile renders a roster entry as a bot profile in a realm.
func (e rosterEntry) toProfile(realmKey, id string) profileModels.Profile {
	return profileModels.Profile{
		ID:       id,
		Pseudo:   e.Pseudo,
		House:    e.House,
		Culture:  "andal",
		RealmKey: realmKey,
		X:        e.X,
		Y:        e.Y,
		Gold:     e.Gold,
		Soldiers: e.Soldiers,
		IsBot:    true,
		Faction:  e.Faction,
	}
}
