// Package refdata holds the reference value sets the processing pipeline
// depends on: the college enumeration, the expected status vocabulary, the
// student ID pattern, the employer alias and suffix tables, and the position
// classification rules.
//
// Algorithms in internal/core evaluate these tables; they never embed the
// values themselves, so the tables can be extended without touching core code.
package refdata

import "regexp"

// Colleges is the fixed set of colleges expected in uploads. The truncated
// names match the upstream export exactly, including the cut-off words.
var Colleges = []string{
	"College of Engineering & Advan",
	"College of Business",
	"College of Science & General S",
	"College of Medicine",
	"College of Pharmacy",
}

// CollegeAbbreviations maps full college names to the short codes used for
// worksheet names.
var CollegeAbbreviations = map[string]string{
	"College of Engineering & Advan": "CoE",
	"College of Business":            "CoB",
	"College of Science & General S": "CoS",
	"College of Medicine":            "CoM",
	"College of Pharmacy":            "CoP",
}

// ExpectedStatuses is the closed vocabulary for the Current Status column.
var ExpectedStatuses = []string{
	"Employed",
	"Employed - add to list",
	"Business owner",
	"Training",
	"Do not contact",
	"Others",
	"Left the country",
	"Passed away",
	"Unemployed",
	"Studying",
	"New graduate",
}

// EmployedStatuses are the statuses rolled up into the "Employed" bucket of
// the employment breakdown. Everything here counts as employed for reporting
// purposes; Unemployed and Studying are their own buckets.
var EmployedStatuses = []string{
	"Employed",
	"Employed - add to list",
	"Business owner",
	"Training",
	"Do not contact",
	"Others",
	"Left the country",
	"Passed away",
	"New graduate",
}

// StudentIDPattern matches well-formed student IDs: all digits, or a leading
// "G" (graduate students) followed by digits.
var StudentIDPattern = regexp.MustCompile(`^[0-9G]\d*$`)

// GenderAliases maps case-folded raw gender values to their canonical form.
var GenderAliases = map[string]string{
	"m":         "Male",
	"male":      "Male",
	"man":       "Male",
	"gentleman": "Male",
	"f":         "Female",
	"female":    "Female",
	"woman":     "Female",
	"lady":      "Female",
}

// SaudiNationalityValues are the values treated as Saudi in nationality
// breakdowns, compared case-insensitively after trimming.
var SaudiNationalityValues = []string{"Saudi Arabia", "Saudi"}

// EmptyWorkplacePatterns classifies placeholder workplace values. Keys are
// category labels, values are the exact (uppercased) cell contents that fall
// into the category.
var EmptyWorkplacePatterns = map[string][]string{
	"COMPLETELY EMPTY": {
		"", "-", ".", " ", "...", "*", "#", "//",
	},
	"PLACEHOLDER": {
		"#N/A", "N/A", "NA", "N.A.", "N/A.", "NONE", "NIL",
		"NOT APPLICABLE", "NOT AVAILABLE", "UNKNOWN",
	},
	"CONFIDENTIAL": {
		"CONFIDENTIAL", "CONFIDENTIAL GOVERNMENT", "GOVERNMENT",
		"GOVERNMENT SECTOR", "CONFIDENTIAL (STEALTH MODE)",
		"CONFIDENTIAL ( STEALTH MODE )", "CONFIDENTIAL COMPANY",
		"CANNOT DISCLOSE", "UNDISCLOSED",
	},
	"OTHERS": {
		"OTHERS", "OTHER", "MISC", "MISCELLANEOUS", "TBD",
		"TO BE DETERMINED", "PENDING",
	},
	"NOT WORKING": {
		"NOT WORKING", "UNEMPLOYED", "NO JOB", "NO WORK",
		"LOOKING FOR JOB", "SEEKING EMPLOYMENT",
	},
}

// CompanyAliases resolves abbreviations and common variants to canonical
// legal names. Lookup happens on the uppercased, trimmed raw value before
// suffix stripping.
var CompanyAliases = map[string]string{
	// Banks
	"SNB":                     "SAUDI NATIONAL BANK",
	"SAUDI NATIONAL BANK":     "SAUDI NATIONAL BANK",
	"SNB CAPITAL":             "SAUDI NATIONAL BANK",
	"THE SAUDI NATIONAL BANK": "SAUDI NATIONAL BANK",
	"NCB":                     "SAUDI NATIONAL BANK",
	"BSF":                     "BANQUE SAUDI FRANSI",
	"BANQUE SAUDI FRANSI":     "BANQUE SAUDI FRANSI",
	"BANQUE SAUDI FRANSI CAPITAL": "BANQUE SAUDI FRANSI",
	"FRANSI CAPITAL":          "BANQUE SAUDI FRANSI",
	"SAB":                     "SAUDI BRITISH BANK",
	"SABB":                    "SAUDI BRITISH BANK",
	"BANK SAB":                "SAUDI BRITISH BANK",

	// Government and PIF entities
	"PIF":                           "PUBLIC INVESTMENT FUND",
	"PUBLIC INVESTMENT FUND - PIF":  "PUBLIC INVESTMENT FUND",
	"SAMA":                          "SAUDI CENTRAL BANK",
	"SAUDI CENTRAL BANK - SAMA":     "SAUDI CENTRAL BANK",
	"SIDF":                          "SAUDI INDUSTRIAL DEVELOPMENT FUND",
	"SAUDI INDUSTRIAL DEVELOPMENT FUND - SIDF": "SAUDI INDUSTRIAL DEVELOPMENT FUND",

	// Consulting firms
	"BCG":                             "BOSTON CONSULTING GROUP",
	"BOSTON CONSULTING GROUP (BCG)":   "BOSTON CONSULTING GROUP",
	"EY":                              "ERNST & YOUNG",
	"ERNST & YOUNG (EY)":              "ERNST & YOUNG",
	"PWC":                             "PRICEWATERHOUSECOOPERS",

	// Healthcare
	"KFSH&RC": "KING FAISAL SPECIALIST HOSPITAL & RESEARCH CENTER",
	"KFSHRC":  "KING FAISAL SPECIALIST HOSPITAL & RESEARCH CENTER",
	"KFSH":    "KING FAISAL SPECIALIST HOSPITAL & RESEARCH CENTER",
	"KING FAISAL SPECIALIST HOSPITAL": "KING FAISAL SPECIALIST HOSPITAL & RESEARCH CENTER",
	"HABIB":                 "DR. SULAIMAN AL HABIB MEDICAL GROUP",
	"DR. SULAIMAN AL HABIB": "DR. SULAIMAN AL HABIB MEDICAL GROUP",

	// Tech companies
	"STC":                             "SAUDI TELECOM COMPANY",
	"SAUDI TELECOM":                   "SAUDI TELECOM COMPANY",
	"HPE":                             "HEWLETT PACKARD ENTERPRISE",
	"HEWLETT PACKARD ENTERPRISE - HPE": "HEWLETT PACKARD ENTERPRISE",

	// Common variations
	"ARAMCO":             "SAUDI ARAMCO",
	"SAUDI ARAMCO":       "SAUDI ARAMCO",
	"SABIC":              "SAUDI BASIC INDUSTRIES CORPORATION",
	"MINISTRY OF HEALTH": "MINISTRY OF HEALTH",
}

// CompanySuffixes are the corporate suffix words stripped from workplace
// names before they become their own canonical form.
var CompanySuffixes = []string{
	"LTD", "LIMITED", "CORPORATION", "CORP", "INC", "LLC", "CO",
	"COMPANY", "GROUP", "HOLDING", "HOLDINGS", "INTERNATIONAL",
	"SAUDI ARABIA", "KSA", "MIDDLE EAST",
}

// CompanyKeywordRule resolves an employer by substring match when the exact
// alias table misses. Every keyword must appear somewhere in the name.
type CompanyKeywordRule struct {
	Keywords  []string
	Canonical string
}

// CompanyKeywordRules handle employers written in too many free-text variants
// for the exact alias table to enumerate.
var CompanyKeywordRules = []CompanyKeywordRule{
	{Keywords: []string{"NATIONAL GUARD", "HEALTH"}, Canonical: "MINISTRY OF NATIONAL GUARD HEALTH AFFAIRS"},
	{Keywords: []string{"KING FAHAD MEDICAL"}, Canonical: "KING FAHAD MEDICAL CITY"},
}

// PositionRule is one ordered pattern rule for position classification.
// Keywords are matched on word boundaries against the uppercased title.
type PositionRule struct {
	Category string
	Keywords []string
}

// PositionRules are evaluated in order; the first rule with a matching
// keyword wins. Order matters: "Founder & CEO" must classify as C-SUITE.
var PositionRules = []PositionRule{
	{Category: "C-SUITE", Keywords: []string{
		"CEO", "CHIEF EXECUTIVE OFFICER",
		"CFO", "CHIEF FINANCIAL OFFICER",
		"CTO", "CHIEF TECHNOLOGY OFFICER",
		"CIO", "CHIEF INFORMATION OFFICER",
		"COO", "CHIEF OPERATING OFFICER",
		"CMO", "CHIEF MARKETING OFFICER",
		"PRESIDENT",
	}},
	{Category: "DIRECTOR", Keywords: []string{
		"DIRECTOR", "MANAGING DIRECTOR", "EXECUTIVE DIRECTOR",
		"HEAD OF", "DEPARTMENT HEAD", "DIVISION HEAD",
	}},
	{Category: "VP", Keywords: []string{
		"VICE PRESIDENT", "VP", "SVP", "EVP",
		"SENIOR VICE PRESIDENT", "EXECUTIVE VICE PRESIDENT",
	}},
	{Category: "FOUNDER", Keywords: []string{
		"FOUNDER", "CO-FOUNDER", "OWNER",
	}},
}

// DefaultGraduationYears is the fallback term list offered to clients when no
// uploaded file has provided its own set.
var DefaultGraduationYears = []string{
	"2010-2011 Spring", "2010-2011 Summer",
	"2011-2012 Spring", "2011-2012 Summer",
	"2012-2013 FALL", "2012-2013 Spring", "2012-2013 Summer",
	"2013-2014 FALL", "2013-2014 Spring", "2013-2014 Summer",
	"2014-2015 FALL", "2014-2015 Spring", "2014-2015 Summer",
	"2015-2016 FALL", "2015-2016 Spring", "2015-2016 Summer",
	"2016-2017 FALL", "2016-2017 Spring", "2016-2017 Summer",
	"2017-2018 FALL", "2017-2018 Spring", "2017-2018 Summer",
	"2018-2019 FALL", "2018-2019 Spring", "2018-2019 Summer",
	"2019-2020 FALL", "2019-2020 Spring", "2019-2020 Summer",
	"2020-2021 FALL", "2020-2021 Spring", "2020-2021 Summer",
	"2021-2022 FALL", "2021-2022 Spring", "2021-2022 Summer",
	"2022-2023 FALL", "2022-2023 Spring", "2022-2023 Summer",
	"2023-2024 Spring", "2023-2024 FALL", "2023-2024 Summer",
	"2024-2025 FALL",
}

// BannerFieldMapping maps Banner extract column names to the alumni list
// column they populate during reconciliation. Columns absent from this table
// are left blank in reconciled rows.
var BannerFieldMapping = map[string]string{
	"Graduation Term": "Year/Semester of Graduation",
	"Student ID":      "Student ID",
	"Student Name":    "Student Name",
	"College":         "College",
	"Degree":          "Degree",
	"Major":           "Major",
	"Minor":           "Minor",
	"Concentration":   "Concentration",
	"Nationality":     "Nationality",
	"SSN":             "SSN",
	"Gender":          "Gender",
	"Alfaisal Email":  "Alfaisal Email",
	"Personal Email":  "Personal Email",
	"Phone Number":    "Phone Number",
	"Joined AU":       "Joining date",
	"CGPA":            "GPA",
}
