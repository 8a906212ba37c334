package user

// Request is a candidate registration record. TermsAccepted is a pointer so a
// missing flag is distinguishable from an explicit false; a JSON string like
// "true" fails binding outright.
type Request struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ZipCode       string `json:"zip_code"`
	Address       string `json:"address"`
	Number        string `json:"number"`
	City          string `json:"city"`
	State         string `json:"state"`
	TermsAccepted *bool  `json:"terms_accepted"`
}
