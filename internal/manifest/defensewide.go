package manifest

// Defense-Wide documents live on comptroller.war.gov under per-volume
// subdirectories; their names are already URL-safe so no encoding is
// applied.
func defenseWide() Source {
	const omVol1Part1 = "01_Operation_and_Maintenance/O_M_VOL_1_PART_1"
	return Source{
		Service:  "DefenseWide",
		Tag:      "DW",
		Label:    "Defense-Wide",
		BaseURL:  "https://comptroller.war.gov/Portals/45/Documents/defbudget/FY2026/budget_justification/pdfs",
		Encoding: EncodeNone,
		Entries: []Entry{
			// O&M volume compilations
			{Category: "O&M", Dir: omVol1Part1, Name: "OM_Volume1_Part1", Ext: "json"},
			{Category: "O&M", Dir: "01_Operation_and_Maintenance/O_M_VOL_1_PART_2", Name: "OM_Volume1_Part_2", Ext: "json"},
			{Category: "O&M", Dir: "01_Operation_and_Maintenance/O_M_VOL_2", Name: "Volume_2", Ext: "json"},

			// O&M volume 1 part 1, individual agency OP-5 exhibits
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "Overview_(Part_1)", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "Summary_by_Agency_(Part_1)", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "O-1_Summary_(Part_1)", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "OP-32A_Summary_(Part_1)", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "CMP_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "CYBERCOM_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "CYBERCOM_Headquarters_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "Cyberspace_Operations_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DAU_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DCAA_Cyber_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DCAA_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DCMA_Cyber_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DCMA_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DCSA_Cyber_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DCSA_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DHRA_Cyber_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DHRA_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DISA_Cyber_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DISA_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DLA_OP-5", Ext: "json"},
			{Category: "O&M_Agencies", Dir: omVol1Part1, Name: "DLSA_OP-5", Ext: "json"},

			// BRAC
			{Category: "BRAC", Dir: "05_BRAC", Name: "FY2026_BRAC_Overview", Ext: "xml"},
		},
	}
}
