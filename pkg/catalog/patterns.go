package catalog

// Patterns returns the intervention templates in dispatch order.
// The matcher tries them in this order and stops at the first pattern
// with a keyword hit, so a statement maps to at most one intervention.
// Material codes reference the CPWD SOR table; sources that do not
// carry a code price the remaining lines only.
func Patterns() []Pattern {
	return []Pattern{
		{
			ID:              "sign_board",
			Keywords:        []string{"sign board", "sign post", "traffic sign", "warning sign", "regulatory sign"},
			Standard:        "IRC:67-2012",
			Policy:          PolicySize,
			DefaultQuantity: 0.81, // 0.9m x 0.9m board
			Materials: []BOMItem{
				{Code: "26.13.1", Multiplier: 1.0},   // aluminum board
				{Code: "26.14.1", Multiplier: 3.0},   // 3m support post
				{Code: "10.5.1", Multiplier: 0.125},  // 500x500x500mm foundation
			},
		},
		{
			ID:              "crash_barrier",
			Keywords:        []string{"crash barrier", "guard rail", "safety barrier", "metal beam"},
			Standard:        "IRC:119-2015",
			Policy:          PolicyLength,
			DefaultQuantity: 100,
			Materials: []BOMItem{
				{Code: "26.20.1", Multiplier: 1.0},  // w-beam per meter
				{Code: "26.20.4", Multiplier: 0.02}, // 2 terminal ends per 100m
			},
		},
		{
			ID:              "road_marking",
			Keywords:        []string{"road marking", "zebra crossing", "lane marking", "stop line"},
			Standard:        "IRC:99-2018",
			Policy:          PolicyArea,
			DefaultQuantity: 50,
			Materials: []BOMItem{
				{Code: "26.25.1", Multiplier: 1.0},
			},
		},
		{
			ID:              "median",
			Keywords:        []string{"median", "divider", "concrete barrier"},
			Standard:        "IRC:SP:84-2014",
			Policy:          PolicyLength,
			DefaultQuantity: 100,
			Materials: []BOMItem{
				{Code: "26.30.1", Multiplier: 0.5}, // 0.5 cum RCC per meter
				{Code: "10.6.1", Multiplier: 50},   // 50kg steel per meter
			},
		},
		{
			ID:              "speed_breaker",
			Keywords:        []string{"speed breaker", "speed hump", "rumble strip"},
			Standard:        "IRC:SP:87-2010",
			Policy:          PolicyLength,
			DefaultQuantity: 3.5, // standard carriageway width
			Materials: []BOMItem{
				{Code: "26.35.1", Multiplier: 1.0},
			},
		},
		{
			ID:              "kerb",
			Keywords:        []string{"kerb", "curb", "footpath"},
			Standard:        "IRC:SP:84-2014",
			Policy:          PolicyLength,
			DefaultQuantity: 100,
			Materials: []BOMItem{
				{Code: "26.30.2", Multiplier: 1.0},
			},
		},
		{
			ID:              "cat_eye",
			Keywords:        []string{"cat eye", "road stud", "reflector", "rpm"},
			Standard:        "IRC:99-2018",
			Policy:          PolicyCount,
			DefaultQuantity: 100,
			Materials: []BOMItem{
				{Code: "26.25.4", Multiplier: 1.0},
			},
		},
	}
}
