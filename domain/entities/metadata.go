package entities

// Metadata describes a loaded dataset. It is decided once at load time and never changes
// + City: registry key of the city the data belongs to
// + Source: path of the file the data was read from
// + HasGender: the source file has a Gender column
// + HasBirthYear: the source file has a Birth Year column
type Metadata struct {
	City         string `json:"city"`
	Source       string `json:"source"`
	HasGender    bool   `json:"has_gender"`
	HasBirthYear bool   `json:"has_birth_year"`
}

func NewMetadata(city string, source string, hasGender bool, hasBirthYear bool) Metadata {
	return Metadata{
		City:         city,
		Source:       source,
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}
