package housing

// app is a helper for test to create a mortgage application.
func app(race string, denied int, income float64) Record {
	return Record{FieldRaceEthnicity: race, FieldDenied: denied, FieldIncome: income}
}

// evictions is a small eviction dataset used across tests.
func evictions() Dataset {
	return Dataset{
		{"county": "Wake", "year": 2022, "outcome": "judgment"},
		{"county": "Durham", "year": 2022, "outcome": "dismissed"},
		{"county": "Wake", "year": 2023, "outcome": "judgment"},
		{"county": "Wake", "year": 2022, "outcome": "dismissed"},
		{"county": "Durham", "year": 2022, "outcome": "dismissed"},
		{"county": "Wake", "year": 2022, "outcome": "judgment"},
	}
}
