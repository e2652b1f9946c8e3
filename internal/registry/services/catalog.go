package services

import "go-westeros/internal/registry/models"

var houseCatalog = []models.House{
	{
		ID:          "stark",
		Name:        "Stark",
		Motto:       "Winter is Coming",
		Seat:        "Winterfell",
		Region:      "North",
		Icon:        "🐺",
		Color:       "#888888",
		Description: "Wardens of the North, proud and honorable.",
		Strengths:   "Stronger defense in winter, high vassal loyalty.",
		Weaknesses:  "Weak political intrigue, slow economy.",
	},
	{
		ID:          "lannister",
		Name:        "Lannister",
		Motto:       "Hear Me Roar!",
		Seat:        "Casterly Rock",
		Region:      "Westerlands",
		Icon:        "🦁",
		Color:       "#C02424",
		Description: "Rich and ruthless, they always pay their debts.",
		Strengths:   "Deep coffers, effective espionage.",
		Weaknesses:  "Arrogance strains diplomacy, costly armies.",
	},
	{
		ID:          "baratheon",
		Name:        "Baratheon",
		Motto:       "Ours is the Fury",
		Seat:        "Storm's End",
		Region:      "Stormlands",
		Icon:        "🦌",
		Color:       "#E3B341",
		Description: "Mighty warriors, born in the storm.",
		Strengths:   "Attack bonus in pitched battle, high troop morale.",
		Weaknesses:  "Poor economic management, blunt diplomacy.",
	},
	{
		ID:          "targaryen",
		Name:        "Targaryen",
		Motto:       "Fire and Blood",
		Seat:        "Dragonstone",
		Region:      "Crownlands",
		Icon:        "🐉",
		Color:       "#000000",
		Description: "The blood of old Valyria, masters of dragons.",
		Strengths:   "Unique units, fear inspired in enemies.",
		Weaknesses:  "Unstable rule, hated by usurpers.",
	},
	{
		ID:          "greyjoy",
		Name:        "Greyjoy",
		Motto:       "We Do Not Sow",
		Seat:        "Pyke",
		Region:      "Iron Islands",
		Icon:        "🦑",
		Color:       "#333333",
		Description: "Lords of the Iron Islands, kings of salt and rock.",
		Strengths:   "Superior fleet, fast resource raiding.",
		Weaknesses:  "No agriculture, no diplomacy with the green lands.",
	},
	{
		ID:          "martell",
		Name:        "Martell",
		Motto:       "Unbowed, Unbent, Unbroken",
		Seat:        "Sunspear",
		Region:      "Dorne",
		Icon:        "☀️",
		Color:       "#E38041",
		Description: "The venom of Dorne, burning under the sun.",
		Strengths:   "Heat resistance, guerrilla tactics.",
		Weaknesses:  "Light armor, political isolation.",
	},
	{
		ID:          "tyrell",
		Name:        "Tyrell",
		Motto:       "Growing Strong",
		Seat:        "Highgarden",
		Region:      "Reach",
		Icon:        "🌹",
		Color:       "#2D7A2F",
		Description: "Masters of the harvest and of chivalry.",
		Strengths:   "Immense food production, numerous knights.",
		Weaknesses:  "Average troop quality, climate dependent.",
	},
	{
		ID:          "nightwatch",
		Name:        "Night's Watch",
		Motto:       "The Shield of the Realms",
		Seat:        "Castle Black",
		Region:      "The Wall",
		Icon:        "⚔️",
		Color:       "#000000",
		Description: "The Lord Commander guards the Wall against the horrors of the North.",
		Strengths:   "Impregnable defense, cheap recruitment.",
		Weaknesses:  "No heirs, very limited resources.",
	},
	{
		ID:          "bolton",
		Name:        "Bolton",
		Motto:       "Our Blades Are Sharp",
		Seat:        "The Dreadfort",
		Region:      "North",
		Icon:        "🩸",
		Color:       "#E86676",
		Description: "An ancient house known for its cruel practices.",
		Strengths:   "Terror lowers enemy morale, torture yields information.",
		Weaknesses:  "Hated by everyone, weak troop loyalty.",
	},
	{
		ID:          "frey",
		Name:        "Frey",
		Motto:       "We Stand Together",
		Seat:        "The Twins",
		Region:      "Riverlands",
		Icon:        "🏰",
		Color:       "#4F5D75",
		Description: "Keepers of the crossing, rich and numerous.",
		Strengths:   "Toll revenue, many heirs for alliances.",
		Weaknesses:  "Military cowardice, reputation for treachery.",
	},
}

var cultureCatalog = []models.Culture{
	{ID: "north", Name: "First Men", Bonus: "+20% Defense in Winter"},
	{ID: "andal", Name: "Andal", Bonus: "+15% Diplomatic Prestige"},
	{ID: "rhoynar", Name: "Rhoynar", Bonus: "+25% Naval Speed"},
	{ID: "valyrian", Name: "Valyrian", Bonus: "+10% Military Power"},
}
