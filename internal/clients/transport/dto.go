package transport

// CreateClientRequest is the payload for creating a client. ClientType picks
// which of the per-type field groups is required; the service enforces that.
type CreateClientRequest struct {
	ClientType              string  `json:"clientType" validate:"required,oneof=individual organization"`
	Email                   string  `json:"email" validate:"required,email"`
	PhoneNumber             *string `json:"phoneNumber"`
	Address                 *string `json:"address"`
	CommunicationPreference *string `json:"communicationPreference"`
	Notes                   *string `json:"notes"`

	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"dateOfBirth"` // YYYY-MM-DD
	IDProof     *string `json:"idProof"`

	OrganizationName   *string `json:"organizationName"`
	RegistrationNumber *string `json:"registrationNumber"`
	IncorporationDate  *string `json:"incorporationDate"` // YYYY-MM-DD
	AuthorizedPerson   *string `json:"authorizedPerson"`
}

// UpdateClientRequest is the payload for a partial update. ClientType itself
// is immutable; omitted fields keep their stored values.
type UpdateClientRequest struct {
	Email                   *string `json:"email" validate:"omitempty,email"`
	PhoneNumber             *string `json:"phoneNumber"`
	Address                 *string `json:"address"`
	CommunicationPreference *string `json:"communicationPreference"`
	Notes                   *string `json:"notes"`

	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"dateOfBirth"`
	IDProof     *string `json:"idProof"`

	OrganizationName   *string `json:"organizationName"`
	RegistrationNumber *string `json:"registrationNumber"`
	IncorporationDate  *string `json:"incorporationDate"`
	AuthorizedPerson   *string `json:"authorizedPerson"`
}

// ListClientsRequest captures the query parameters for the client list.
type ListClientsRequest struct {
	Search     string `form:"search"`
	ClientType string `form:"clientType" validate:"omitempty,oneof=All individual organization"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

type ClientResponse struct {
	ID                      string  `json:"id"`
	ClientType              string  `json:"clientType"`
	DisplayName             string  `json:"displayName"`
	Email                   string  `json:"email"`
	PhoneNumber             *string `json:"phoneNumber"`
	Address                 *string `json:"address"`
	CommunicationPreference *string `json:"communicationPreference"`
	Notes                   *string `json:"notes"`

	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	IDProof     *string `json:"idProof,omitempty"`

	OrganizationName   *string `json:"organizationName,omitempty"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	IncorporationDate  *string `json:"incorporationDate,omitempty"`
	AuthorizedPerson   *string `json:"authorizedPerson,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ClientDetailResponse extends ClientResponse with derived fields only
// computed for a single-client fetch.
type ClientDetailResponse struct {
	ClientResponse
	OpenTaskCount int `json:"openTaskCount"`
}

type ClientListResponse struct {
	Items      []ClientResponse `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}
