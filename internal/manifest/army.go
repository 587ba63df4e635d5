package manifest

// Army documents are published on asafm.army.mil under a discretionary
// budget tree whose category folders mirror the local taxonomy.
func army() Source {
	return Source{
		Service:  "Army",
		Tag:      "Army",
		Label:    "Army",
		BaseURL:  "https://www.asafm.army.mil/Portals/72/Documents/BudgetMaterial/2026/Discretionary%20Budget",
		Encoding: EncodePath,
		Entries: []Entry{
			// Military Personnel
			{Category: "Military Personnel", Name: "Military Personnel Army Volume 1", Ext: "xml"},
			{Category: "Military Personnel", Name: "Reserve Personnel Army Volume 1", Ext: "xml"},
			{Category: "Military Personnel", Name: "National Guard Personnel Army Volume 1", Ext: "xml"},

			// Operation and Maintenance
			{Category: "Operation and Maintenance", Name: "Regular Army Operation and Maintenance Volume 1", Ext: "json"},
			{Category: "Operation and Maintenance", Name: "Regular Army Operation and Maintenance Volume 2", Ext: "json"},
			{Category: "Operation and Maintenance", Name: "Reserve Army Operation and Maintenance Overview", Ext: "xml"},
			{Category: "Operation and Maintenance", Name: "Reserve Army Operation and Maintenance", Ext: "xml"},
			{Category: "Operation and Maintenance", Name: "National Guard Army Operation and Maintenance Overview", Ext: "xml"},
			{Category: "Operation and Maintenance", Name: "National Guard Army Operation and Maintenance", Ext: "xml"},

			// Procurement
			{Category: "Procurement", Name: "Aircraft Procurement Army", Ext: "xml"},
			{Category: "Procurement", Name: "Missile Procurement Army", Ext: "xml"},
			{Category: "Procurement", Name: "Other Procurement - BA1 - Tactical & Support Vehicles", Ext: "xml"},
			{Category: "Procurement", Name: "Other Procurement - BA2 - Communications & Electronics", Ext: "xml"},
			{Category: "Procurement", Name: "Other Procurement - BA 3, 4 & 6 - Other Support Equipment, Initial Spares and Agile Portfolio Management", Ext: "xml"},
			{Category: "Procurement", Name: "Procurement of Ammunition", Ext: "xml"},
			{Category: "Procurement", Name: "Procurement of Weapons and Tracked Combat Vehicles", Ext: "xml"},

			// RDTE
			{Category: "rdte", Name: "RDTE - Vol 1 - Budget Activity 1", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 1 - Budget Activity 2", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 1 - Budget Activity 3", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 2 - Budget Activity 4A", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 2 - Budget Activity 4B", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 3 - Budget Activity 5A", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 3 - Budget Activity 5B", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 3 - Budget Activity 5C", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 3 - Budget Activity 5D", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 4 - Budget Activity 6", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 4 - Budget Activity 7", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 4 - Budget Activity 8", Ext: "xml"},
			{Category: "rdte", Name: "RDTE - Vol 4 - Budget Activity 9", Ext: "xml"},

			// Military Construction
			{Category: "Military Construction", Name: "Regular Army Military Construction, Army Family Housing and Homeowners Assistance", Ext: "xml"},
			{Category: "Military Construction", Name: "Reserve Army Military Construction", Ext: "xml"},
			{Category: "Military Construction", Name: "National Guard Army Military Construction", Ext: "xml"},
			{Category: "Military Construction", Name: "Base Realignment and Closure Account", Ext: "xml"},

			// Working Capital Fund
			{Category: "awcf", Name: "Army Working Capital Fund", Ext: "xml"},

			// Chemical Agents & Munitions Destruction
			{Category: "camdd", Name: "Chemical Agents and Munitions Destruction, Defense", Ext: "xml"},

			// Cemeterial Expenses
			{Category: "U.S. Army Cemeterial Expenses and Construction", Name: "U.S. Army Cemeterial Expenses and Construction", Ext: "xml"},

			// Other Funds
			{Category: "Other Funds", Name: "Counter-Islamic State of Iraq and Syria Train and Equip Fund", Ext: "xml"},
		},
	}
}
