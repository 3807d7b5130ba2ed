package network

import "github.com/corposcope/backend/pkg/common"

// SampleNetwork produces a fixed illustrative graph (an airline
// holding-company structure) for UI development. It is not part of the
// production data path; the center company takes the given number so
// frontends can exercise lookup flows against it.
func SampleNetwork(centerCompanyNumber string) (*Graph, error) {
	primary := common.CompanyBundle{
		Profile: common.CompanyRecord{
			CompanyNumber:  centerCompanyNumber,
			CompanyName:    "Albion Air Holdings PLC",
			CompanyStatus:  "active",
			CompanyType:    "plc",
			DateOfCreation: "2002-05-14",
			RegisteredOfficeAddress: &common.Address{
				AddressLine1: "1 Aviation Way",
				Locality:     "Crawley",
				Region:       "West Sussex",
				PostalCode:   "RH6 0PA",
				Country:      "England",
			},
			SicCodes: []string{"51101", "64209"},
		},
		Officers: []common.OfficerRecord{
			{
				Name:               "MARLOWE, Edward James",
				OfficerRole:        "director",
				AppointedOn:        "2002-05-14",
				Nationality:        "British",
				CountryOfResidence: "England",
				DateOfBirth:        &common.DateOfBirth{Month: 3, Year: 1961},
			},
			{
				Name:               "OKAFOR, Adaeze",
				OfficerRole:        "director",
				AppointedOn:        "2015-09-01",
				Nationality:        "British",
				CountryOfResidence: "England",
				DateOfBirth:        &common.DateOfBirth{Month: 11, Year: 1974},
			},
			{
				Name:        "HART, Priscilla",
				OfficerRole: "secretary",
				AppointedOn: "2008-02-20",
				ResignedOn:  "2019-06-30",
				Nationality: "British",
			},
		},
		Pscs: []common.PscRecord{
			{
				Name:               "Meridian Transport Capital Ltd",
				NaturesOfControl:   []string{"ownership-of-shares-75-to-100-percent"},
				Nationality:        "British",
				CountryOfResidence: "England",
			},
		},
	}

	related := []common.CompanyBundle{
		{
			Profile: common.CompanyRecord{
				CompanyNumber:  "05881923",
				CompanyName:    "Albion Air Operations Ltd",
				CompanyStatus:  "active",
				CompanyType:    "ltd",
				DateOfCreation: "2006-07-03",
				RegisteredOfficeAddress: &common.Address{
					AddressLine1: "1 Aviation Way",
					Locality:     "Crawley",
					PostalCode:   "RH6 0PA",
					Country:      "England",
				},
				SicCodes: []string{"51101"},
			},
		},
		{
			Profile: common.CompanyRecord{
				CompanyNumber:  "07210466",
				CompanyName:    "Albion Ground Services Ltd",
				CompanyStatus:  "active",
				CompanyType:    "ltd",
				DateOfCreation: "2010-01-18",
				SicCodes:       []string{"52230"},
			},
		},
		{
			Profile: common.CompanyRecord{
				CompanyNumber: "11003274",
				CompanyName:   "Albion Air Leasing Ltd",
				CompanyStatus: "dissolved",
				CompanyType:   "ltd",
			},
		},
	}

	return BuildNetwork(primary, related, DefaultBuildOptions())
}
