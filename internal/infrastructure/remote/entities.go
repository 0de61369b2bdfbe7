package remote

import (
	"time"

	"github.com/rescue-ops/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Resource path segments served by the owning services.
const (
	ResourceStatus  = "statuses"
	ResourceAddress = "addresses"
	ResourcePhoto   = "photos"
	ResourceUser    = "users"
	ResourceTeam    = "teams"
	ResourceCitizen = "citizens"
)

// StatusRef is the projection of a lifecycle status.
type StatusRef struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AddressRef is the projection of a postal address.
type AddressRef struct {
	ID        int64    `json:"id"`
	Street    string   `json:"street"`
	City      string   `json:"city"`
	Zip       string   `json:"zip,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PhotoRef is the projection of a stored image.
type PhotoRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// UserRef is the projection of a user owned by the identity service.
type UserRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	StatusID int64  `json:"status_id"`
}

// TeamRef is the projection of a team owned by the teams service.
type TeamRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	StatusID int64  `json:"status_id"`
}

// CitizenRef is the projection of a citizen who can report incidents.
type CitizenRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Type aliases keep call sites readable.
type (
	StatusClient  = EntityClient[StatusRef]
	AddressClient = EntityClient[AddressRef]
	PhotoClient   = EntityClient[PhotoRef]
	UserClient    = EntityClient[UserRef]
	TeamClient    = EntityClient[TeamRef]
	CitizenClient = EntityClient[CitizenRef]
)

// NewStatusClient creates a client for lifecycle statuses.
func NewStatusClient(cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*StatusClient, error) {
	return NewEntityClient[StatusRef](ResourceStatus, cfg, logger, metrics)
}

// NewAddressClient creates a client for addresses.
func NewAddressClient(cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*AddressClient, error) {
	return NewEntityClient[AddressRef](ResourceAddress, cfg, logger, metrics)
}

// NewPhotoClient creates a client for photos.
func NewPhotoClient(cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*PhotoClient, error) {
	return NewEntityClient[PhotoRef](ResourcePhoto, cfg, logger, metrics)
}

// NewUserClient creates a client for users.
func NewUserClient(cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*UserClient, error) {
	return NewEntityClient[UserRef](ResourceUser, cfg, logger, metrics)
}

// NewTeamClient creates a client for teams.
func NewTeamClient(cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*TeamClient, error) {
	return NewEntityClient[TeamRef](ResourceTeam, cfg, logger, metrics)
}

// NewCitizenClient creates a client for citizens.
func NewCitizenClient(cfg Config, logger *zap.Logger, metrics *telemetry.Metrics) (*CitizenClient, error) {
	return NewEntityClient[CitizenRef](ResourceCitizen, cfg, logger, metrics)
}

// Clients bundles one client per externally owned kind.
type Clients struct {
	Status  *StatusClient
	Address *AddressClient
	Photo   *PhotoClient
	User    *UserClient
	Team    *TeamClient
	Citizen *CitizenClient
}

// Endpoints maps each resource to the base URL of its owning service.
type Endpoints struct {
	Status  string
	Address string
	Photo   string
	User    string
	Team    string
	Citizen string
}

// NewClients builds every client from the endpoints sharing one timeout.
func NewClients(endpoints Endpoints, timeout time.Duration, logger *zap.Logger, metrics *telemetry.Metrics) (*Clients, error) {
	var (
		c   Clients
		err error
	)
	cfg := func(base string) Config { return Config{BaseURL: base, Timeout: timeout} }

	if c.Status, err = NewStatusClient(cfg(endpoints.Status), logger, metrics); err != nil {
		return nil, err
	}
	if c.Address, err = NewAddressClient(cfg(endpoints.Address), logger, metrics); err != nil {
		return nil, err
	}
	if c.Photo, err = NewPhotoClient(cfg(endpoints.Photo), logger, metrics); err != nil {
		return nil, err
	}
	if c.User, err = NewUserClient(cfg(endpoints.User), logger, metrics); err != nil {
		return nil, err
	}
	if c.Team, err = NewTeamClient(cfg(endpoints.Team), logger, metrics); err != nil {
		return nil, err
	}
	if c.Citizen, err = NewCitizenClient(cfg(endpoints.Citizen), logger, metrics); err != nil {
		return nil, err
	}
	return &c, nil
}
