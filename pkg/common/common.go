package common

// CompanyRecord is a company profile in the Companies House shape.
// The upstream fetch layer is expected to deliver records already
// normalized: company numbers upper-cased, dates as ISO strings
// (YYYY-MM-DD).
type CompanyRecord struct {
	CompanyNumber           string   `json:"company_number"`
	CompanyName             string   `json:"company_name"`
	CompanyStatus           string   `json:"company_status,omitempty"`
	CompanyType             string   `json:"company_type,omitempty"`
	DateOfCreation          string   `json:"date_of_creation,omitempty"`
	RegisteredOfficeAddress *Address `json:"registered_office_address,omitempty"`
	SicCodes                []string `json:"sic_codes,omitempty"`
}

// Address is a structured registered office address.
type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

// DateOfBirth carries the month+year granularity Companies House
// publishes for officers and PSCs.
type DateOfBirth struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// OfficerRecord is a company officer appointment. An empty ResignedOn
// means the appointment is currently active.
type OfficerRecord struct {
	Name               string       `json:"name"`
	OfficerRole        string       `json:"officer_role,omitempty"`
	AppointedOn        string       `json:"appointed_on,omitempty"`
	ResignedOn         string       `json:"resigned_on,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	CountryOfResidence string       `json:"country_of_residence,omitempty"`
	DateOfBirth        *DateOfBirth `json:"date_of_birth,omitempty"`
}

// PscRecord is a person with significant control. NaturesOfControl
// holds the free-text control codes (e.g.
// "ownership-of-shares-75-to-100-percent"); a non-empty CeasedOn means
// the person is no longer a PSC.
type PscRecord struct {
	Name               string       `json:"name"`
	NaturesOfControl   []string     `json:"natures_of_control,omitempty"`
	CeasedOn           string       `json:"ceased_on,omitempty"`
	Nationality        string       `json:"nationality,omitempty"`
	CountryOfResidence string       `json:"country_of_residence,omitempty"`
	DateOfBirth        *DateOfBirth `json:"date_of_birth,omitempty"`
}

// CompanyBundle groups a company profile with its officer and PSC
// lists. It is the unit of input for network building: one bundle for
// the primary company plus zero or more bundles for related entities.
type CompanyBundle struct {
	Profile  CompanyRecord   `json:"profile"`
	Officers []OfficerRecord `json:"officers,omitempty"`
	Pscs     []PscRecord     `json:"pscs,omitempty"`
}
