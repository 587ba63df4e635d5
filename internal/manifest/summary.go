package manifest

// DoD Summary display files are addressed by absolute URL and saved
// under a single folder with explicit local names.
func dodSummary() Source {
	const base = "https://comptroller.war.gov/Portals/45/Documents/defbudget/FY2026"
	return Source{
		Service:  "DoD_Summary",
		Label:    "DoD Summary",
		Encoding: EncodeAbsolute,
		Entries: []Entry{
			// Excel summary display files
			{URL: base + "/m1_display.xlsx", SaveAs: "FY2026_M1_Military_Personnel.xlsx"},
			{URL: base + "/o1_display.xlsx", SaveAs: "FY2026_O1_Operation_Maintenance.xlsx"},
			{URL: base + "/rf1_display.xlsx", SaveAs: "FY2026_RF1_Revolving_Management_Fund.xlsx"},
			{URL: base + "/p1_display.xlsx", SaveAs: "FY2026_P1_Procurement.xlsx"},
			{URL: base + "/p1r_display.xlsx", SaveAs: "FY2026_P1R_Procurement_Reserve.xlsx"},
			{URL: base + "/r1_display.xlsx", SaveAs: "FY2026_R1_RDTE.xlsx"},
			{URL: base + "/c1.xlsx", SaveAs: "FY2026_C1_MilCon_FamilyHousing_BRAC.xlsx"},

			// JSON initiative files
			{URL: base + "/FY2026_Pacific_Deterrence_Initiative.json", SaveAs: "FY2026_Pacific_Deterrence_Initiative.json"},
			{URL: base + "/FY2026_Drug_Interdiction_and_Counter-Drug_Activities.json", SaveAs: "FY2026_Drug_Interdiction_Counter_Drug.json"},
		},
	}
}

// Sources returns the built-in FY2026 manifest. The slice is freshly
// built on every call so callers may filter or edit it freely.
func Sources() []Source {
	return []Source{
		army(),
		airForce(),
		defenseWide(),
		dodSummary(),
	}
}
