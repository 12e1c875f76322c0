package domain

// Topic is the closed set of discussion categories for forum posts.
type Topic string

const (
	TopicSoftware         Topic = "Software"
	TopicHardware         Topic = "Hardware"
	TopicOperatingSystems Topic = "Operating Systems"
	TopicNetworking       Topic = "Networking"
)

func (t Topic) String() string { return string(t) }

func (t Topic) IsValid() bool {
	switch t {
	case TopicSoftware, TopicHardware, TopicOperatingSystems, TopicNetworking:
		return true
	}
	return false
}

// Topics lists every valid forum topic in display order.
func Topics() []Topic {
	return []Topic{TopicSoftware, TopicHardware, TopicOperatingSystems, TopicNetworking}
}

// Department is the closed set of university departments for notes.
type Department string

const (
	DepartmentPhilosophy     Department = "Philosophy"
	DepartmentSciences       Department = "Sciences"
	DepartmentHealthSciences Department = "Health Sciences"
	DepartmentEducation      Department = "Education"
	DepartmentFineArts       Department = "Fine Arts"
	DepartmentEngineering    Department = "Engineering"
	DepartmentSocialSciences Department = "Social Sciences"
	DepartmentEconomics      Department = "Economics and Administrative Sciences"
	DepartmentMusicStudies   Department = "Music Studies"
	DepartmentInformatics    Department = "Informatics and Telecommunications"
	DepartmentAgricultural   Department = "Agricultural Technology"
)

func (d Department) String() string { return string(d) }

func (d Department) IsValid() bool {
	switch d {
	case DepartmentPhilosophy, DepartmentSciences, DepartmentHealthSciences,
		DepartmentEducation, DepartmentFineArts, DepartmentEngineering,
		DepartmentSocialSciences, DepartmentEconomics, DepartmentMusicStudies,
		DepartmentInformatics, DepartmentAgricultural:
		return true
	}
	return false
}

// Departments lists every valid department in display order.
func Departments() []Department {
	return []Department{
		DepartmentPhilosophy, DepartmentSciences, DepartmentHealthSciences,
		DepartmentEducation, DepartmentFineArts, DepartmentEngineering,
		DepartmentSocialSciences, DepartmentEconomics, DepartmentMusicStudies,
		DepartmentInformatics, DepartmentAgricultural,
	}
}
