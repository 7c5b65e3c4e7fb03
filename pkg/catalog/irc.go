package catalog

// Standards returns the IRC codes-of-practice knowledge base, keyed by
// IRC code.
func Standards() map[string]Standard {
	return map[string]Standard{
		"IRC:35-2015": {
			Code:      "IRC:35-2015",
			Title:     "Code of Practice for Road Bridges",
			Keywords:  []string{"bridge", "culvert", "underpass", "overpass"},
			Materials: []string{"concrete", "steel", "reinforcement"},
		},
		"IRC:67-2012": {
			Code:  "IRC:67-2012",
			Title: "Code of Practice for Road Signs",
			Keywords: []string{"sign board", "sign post", "traffic sign", "warning sign",
				"regulatory sign", "informatory sign", "directional sign"},
			Materials: []string{"aluminum sheet", "retro-reflective sheeting", "steel post",
				"foundation concrete"},
		},
		"IRC:99-2018": {
			Code:  "IRC:99-2018",
			Title: "Tentative Guidelines on the Provision of Road Traffic Safety",
			Keywords: []string{"road marking", "pavement marking", "zebra crossing",
				"stop line", "lane marking"},
			Materials: []string{"thermoplastic paint", "cold plastic paint", "glass beads"},
		},
		"IRC:119-2015": {
			Code:  "IRC:119-2015",
			Title: "Guidelines for Structural Safety of Road Side Appurtenances",
			Keywords: []string{"crash barrier", "guard rail", "safety barrier", "metal beam",
				"concrete barrier", "parapet", "railing"},
			Materials: []string{"w-beam guard rail", "concrete blocks", "steel post",
				"anchor bolts", "reflectors"},
		},
		"IRC:SP:84-2014": {
			Code:      "IRC:SP:84-2014",
			Title:     "Manual for Structural Safety of Road Side Appurtenances",
			Keywords:  []string{"median", "divider", "kerb", "footpath", "shoulder"},
			Materials: []string{"concrete", "paver blocks", "kerb stones"},
		},
		"IRC:SP:87-2010": {
			Code:  "IRC:SP:87-2010",
			Title: "Manual for Road Safety Audit",
			Keywords: []string{"speed breaker", "rumble strip", "speed hump", "chicane",
				"pedestrian crossing", "speed camera mount"},
			Materials: []string{"concrete", "bitumen", "cat eye reflectors"},
		},
	}
}
