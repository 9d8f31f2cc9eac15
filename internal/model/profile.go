package model

type BusinessProfile struct {
	CompanyName        string `json:"companyName"`
	OrganizationNumber string `json:"organizationNumber"`
	Address            string `json:"address"`
	PostalCode         string `json:"postalCode"`
	City               string `json:"city"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email"`
	Website            string `json:"website,omitempty"`
	Logo               string `json:"logo,omitempty"`
}
