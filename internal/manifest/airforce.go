package manifest

// Air Force and Space Force documents are all XML, served from a single
// flat directory on saffm.hq.af.mil; only the file name needs encoding.
func airForce() Source {
	return Source{
		Service:  "AirForce",
		Tag:      "AF",
		Label:    "Air Force & Space Force",
		BaseURL:  "https://www.saffm.hq.af.mil/Portals/84/documents/FY26",
		Encoding: EncodeName,
		Entries: []Entry{
			// BRAC
			{Category: "BRAC", Name: "FY26 Base Realignment and Closure", Ext: "xml"},

			// Military Construction
			{Category: "MILCON", Name: "FY26 Air Force MILCON", Ext: "xml"},
			{Category: "MILCON", Name: "FY26 Air National Guard MILCON", Ext: "xml"},
			{Category: "MILCON", Name: "FY26 Air Force Reserve MILCON", Ext: "xml"},

			// Military Personnel
			{Category: "MILPERS", Name: "FY26 Air Force MILPERS", Ext: "xml"},
			{Category: "MILPERS", Name: "FY26 Air National Guard MILPERS", Ext: "xml"},
			{Category: "MILPERS", Name: "FY26 Air Force Reserves MILPERS", Ext: "xml"},
			{Category: "MILPERS", Name: "FY26 Space Force MILPERS", Ext: "xml"},

			// Operation & Maintenance
			{Category: "O&M", Name: "FY26 Air Force Operations and Maintenance Vol I", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Air Force Operations and Maintenance Vol II", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Air National Guard Operation and Maintenance Vol I", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Air National Guard Operation and Maintenance Vol II", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Air Force Reserve Operations and Maintenance Vol I", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Air Force Reserve Operations and Maintenance Vol II", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Space Force Operations and Maintenance Vol I", Ext: "xml"},
			{Category: "O&M", Name: "FY26 Space Force Operations and Maintenance Vol II", Ext: "xml"},

			// Procurement
			{Category: "Procurement", Name: "FY26 Air Force Aircraft Procurement Vol I", Ext: "xml"},
			{Category: "Procurement", Name: "FY26 Air Force Aircraft Procurement Vol II", Ext: "xml"},
			{Category: "Procurement", Name: "FY26 Air Force Ammunition Procurement", Ext: "xml"},
			{Category: "Procurement", Name: "FY26 Air Force Missile Procurement", Ext: "xml"},
			{Category: "Procurement", Name: "FY26 Air Force Other Procurement", Ext: "xml"},
			{Category: "Procurement", Name: "FY26 Space Force Procurement", Ext: "xml"},

			// RDTE
			{Category: "RDTE", Name: "FY26 Air Force Research and Development Test and Evaluation Vol I", Ext: "xml"},
			{Category: "RDTE", Name: "FY26 Air Force Research and Development Test and Evaluation Vol II", Ext: "xml"},
			{Category: "RDTE", Name: "FY26 Air Force Research and Development Test and Evaluation Vol III", Ext: "xml"},
			{Category: "RDTE", Name: "FY26 Space Force Research and Development Test and Evaluation Vol I", Ext: "xml"},
			{Category: "RDTE", Name: "FY26 Space Force Research and Development Test and Evaluation Vol II", Ext: "xml"},
		},
	}
}
