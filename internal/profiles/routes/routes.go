package routes

import (
	"context"
	"strings"

	"go-westeros/internal/profiles/dto"
	"go-westeros/internal/profiles/services"
	"go-westeros/pkg/middleware"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-playground/validator/v10"
)

// Module represents the profiles routes module
type Module struct {
	service     *services.Service
	auth        *middleware.SessionAuth
	validate    *validator.Validate
	onRealmList func(ctx context.Context, realmKey string)
}

// NewModule creates a new profiles routes module
func NewModule(service *services.Service, auth *middleware.SessionAuth) *Module {
	validate := validator.New()
	if err := dto.RegisterCustomValidators(validate); err != nil {
		panic(err)
	}

	return &Module{
		service:  service,
		auth:     auth,
		validate: validate,
	}
}

// SetRealmListHook installs a callback invoked on realm member listings.
// The monarchy module uses it to crown a monarch on first sight of a
// monarch-less realm.
func (m *Module) SetRealmListHook(hook func(ctx context.Context, realmKey string)) {
	m.onRealmList = hook
}

// RegisterUnifiedRoutes registers all profile routes with the provided Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API, basePath string) {
	// Oath (onboarding) endpoint, the only unauthenticated mutation
	huma.Register(api, huma.Operation{
		OperationID: "profiles-take-oath",
		Method:      "POST",
		Path:        basePath + "/oath",
		Summary:     "Take the Oath",
		Description: "Create a profile for a new lord: choose a pseudo, house and culture, receive starting gold and soldiers and a session token.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *dto.TakeOathInput) (*dto.TakeOathOutput, error) {
		return m.takeOath(ctx, input)
	})

	// Caller's own profile
	huma.Register(api, huma.Operation{
		OperationID: "profiles-get-me",
		Method:      "GET",
		Path:        basePath + "/me",
		Summary:     "Get Own Profile",
		Description: "Retrieve the profile identified by the session token.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *dto.GetMeInput) (*dto.ProfileOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}
		return m.getProfile(ctx, claims.ProfileID)
	})

	// Realm member listing
	huma.Register(api, huma.Operation{
		OperationID: "profiles-list-realm",
		Method:      "GET",
		Path:        basePath,
		Summary:     "List Realm Members",
		Description: "Retrieve every profile in the caller's realm. Triggers a monarch election when the realm has none.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *dto.ListProfilesInput) (*dto.ProfileListOutput, error) {
		claims, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie)
		if err != nil {
			return nil, err
		}

		if m.onRealmList != nil {
			m.onRealmList(ctx, claims.RealmKey)
		}

		profiles, err := m.service.ListRealm(ctx, claims.RealmKey)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to list realm members", err)
		}
		return &dto.ProfileListOutput{Body: profiles}, nil
	})

	// Single profile lookup
	huma.Register(api, huma.Operation{
		OperationID: "profiles-get-by-id",
		Method:      "GET",
		Path:        basePath + "/{profile_id}",
		Summary:     "Get Profile",
		Description: "Retrieve a single profile by its ID.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *dto.GetProfileInput) (*dto.ProfileOutput, error) {
		if _, err := m.auth.ValidateAuthFromHeaders(input.Authorization, input.Cookie); err != nil {
			return nil, err
		}
		return m.getProfile(ctx, input.ProfileID)
	})

	// Status endpoint (public, no auth required)
	huma.Register(api, huma.Operation{
		OperationID: "profiles-get-status",
		Method:      "GET",
		Path:        basePath + "/status",
		Summary:     "Get profiles module status",
		Description: "Returns the health status of the profiles module",
		Tags:        []string{"Module Status"},
	}, func(ctx context.Context, input *struct{}) (*dto.StatusOutput, error) {
		return &dto.StatusOutput{Body: dto.StatusResponse{Module: "profiles", Status: "healthy"}}, nil
	})
}

// takeOath handles the onboarding request
func (m *Module) takeOath(ctx context.Context, input *dto.TakeOathInput) (*dto.TakeOathOutput, error) {
	if errs := dto.ValidateStruct(m.validate, input.Body); len(errs) > 0 {
		return nil, huma.Error400BadRequest(strings.Join(errs, "; "))
	}

	profile, err := m.service.TakeOath(ctx, input.Body.Pseudo, input.Body.House, input.Body.Culture, input.Body.RealmKey)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	token, err := m.auth.IssueToken(profile.ID, profile.RealmKey, profile.Pseudo)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to issue session token", err)
	}

	return &dto.TakeOathOutput{
		SetCookie: m.auth.BuildSessionCookie(token),
		Body: dto.OathResponse{
			Profile: *profile,
			Token:   token,
		},
	}, nil
}

// getProfile handles single profile lookups
func (m *Module) getProfile(ctx context.Context, profileID string) (*dto.ProfileOutput, error) {
	profile, err := m.service.GetProfile(ctx, profileID)
	if err != nil {
		if err == services.ErrProfileNotFound {
			return nil, huma.Error404NotFound("Profile not found")
		}
		return nil, huma.Error500InternalServerError("Failed to retrieve profile", err)
	}
	return &dto.ProfileOutput{Body: *profile}, nil
}
